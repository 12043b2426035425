package gallery

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// synonymGroups lists category labels known to mean the same thing across
// data producers. Entries are in normalized form.
var synonymGroups = [][]string{
	{"cao", "cachorro", "dog"},
	{"gato", "cat"},
	{"macho", "male"},
	{"femea", "female"},
	{"disponivel", "available"},
	{"em_analise", "em analise", "pending"},
	{"adotado", "adopted"},
	{"indisponivel", "unavailable"},
}

var synonyms = buildSynonyms(synonymGroups)

func buildSynonyms(groups [][]string) map[string]int {
	m := make(map[string]int)
	for i, g := range groups {
		for _, label := range g {
			m[label] = i
		}
	}
	return m
}

// MatchesField decides whether a categorical item value satisfies the
// user's selection for the same dimension. Matching is tolerant:
//   - an empty selection always matches;
//   - a missing item value never matches a non-empty selection;
//   - a one-character selection matches by prefix ("M" matches "Macho");
//   - otherwise equal values, known synonyms, or containment in either
//     direction match ("CAO" matches "Cachorro").
func MatchesField(itemValue, filterValue string) bool {
	filter := domain.NormalizeText(filterValue)
	if filter == "" {
		return true
	}

	item := domain.NormalizeText(itemValue)
	if item == "" {
		return false
	}

	if utf8.RuneCountInString(filter) == 1 {
		return strings.HasPrefix(item, filter)
	}

	if item == filter {
		return true
	}

	if gi, ok := synonyms[item]; ok {
		if gf, ok := synonyms[filter]; ok && gi == gf {
			return true
		}
	}

	return strings.Contains(item, filter) || strings.Contains(filter, item)
}

// TextMatches reports whether needle occurs in haystack, ignoring case,
// accents and whitespace differences. An empty needle always matches.
func TextMatches(haystack, needle string) bool {
	n := domain.NormalizeText(needle)
	if n == "" {
		return true
	}

	h := domain.NormalizeText(haystack)
	if h == "" {
		return false
	}

	return strings.Contains(h, n)
}
