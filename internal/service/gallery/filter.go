package gallery

import "github.com/heartmarshall/miaudota/internal/domain"

// DefaultPageSize matches the gallery grid of four columns by three rows.
const DefaultPageSize = 12

// Matches reports whether a candidate satisfies every active criterion.
func Matches(c domain.Candidate, criteria domain.FilterCriteria) bool {
	return TextMatches(c.SearchText(), criteria.Query) &&
		MatchesField(c.Status, criteria.Status) &&
		MatchesField(c.Species, criteria.Species) &&
		MatchesField(c.Sex, criteria.Sex)
}

// FilterCandidates returns, in their original order, the candidates that
// satisfy all criteria. The result is never nil.
func FilterCandidates(items []domain.Candidate, criteria domain.FilterCriteria) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(items))
	for _, c := range items {
		if Matches(c, criteria) {
			out = append(out, c)
		}
	}
	return out
}

// FilterRecords filters a decoded JSON collection. Non-array input yields
// an empty result.
func FilterRecords(v any, criteria domain.FilterCriteria) []domain.Candidate {
	return FilterCandidates(IngestAll(v), criteria)
}

// Page is one page of a filtered result.
type Page struct {
	Items      []domain.Candidate
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Paginate slices items into 1-based pages of limit items. The page number
// is clamped into [1, TotalPages]; limit <= 0 selects DefaultPageSize. An
// empty result is one empty page.
func Paginate(items []domain.Candidate, page, limit int) Page {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	total := len(items)
	totalPages := max((total+limit-1)/limit, 1)

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * limit
	end := min(start+limit, total)
	if start > total {
		start = total
	}

	pageItems := make([]domain.Candidate, end-start)
	copy(pageItems, items[start:end])

	return Page{
		Items:      pageItems,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
