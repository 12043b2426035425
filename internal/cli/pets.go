package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

type petsOptions struct {
	query   string
	status  string
	species string
	sex     string
	remote  bool
	page    int
	limit   int
	asJSON  bool
}

func newPetsCmd(e *env) *cobra.Command {
	var opts petsOptions

	cmd := &cobra.Command{
		Use:   "pets",
		Short: "List pets matching the given filters",
		Example: `  miaudota pets --species gato --sex f
  miaudota pets --q "rex" --status disponivel --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPets(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), e, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.query, "q", "", "free text matched against name and description")
	f.StringVar(&opts.status, "status", "", "availability (DISPONIVEL, EM_ANALISE, ADOTADO, INDISPONIVEL)")
	f.StringVar(&opts.species, "species", "", "species (CAO, GATO)")
	f.StringVar(&opts.sex, "sex", "", "sex (MACHO, FEMEA, or M/F)")
	f.BoolVar(&opts.remote, "remote", false, "let the shelter API filter instead of filtering locally")
	f.IntVar(&opts.page, "page", 1, "page number")
	f.IntVar(&opts.limit, "limit", 0, "pets per page (default filter.page_size)")
	f.BoolVar(&opts.asJSON, "json", false, "print the raw pet objects as JSON")
	return cmd
}

type petsOutput struct {
	Data       []map[string]any `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

func runPets(ctx context.Context, out, errOut io.Writer, e *env, opts petsOptions) error {
	criteria := domain.NewFilterCriteria(opts.query, opts.status, opts.species, opts.sex)
	for _, w := range unknownFilters(criteria) {
		fmt.Fprintln(errOut, w)
	}

	var items []domain.Candidate
	if opts.remote || e.cfg.Filter.IsRemote() {
		found, err := e.client.SearchPets(ctx, criteria)
		if err != nil {
			return err
		}
		items = found
	} else {
		all, err := e.client.ListPets(ctx)
		if err != nil {
			return err
		}
		items = gallery.FilterCandidates(all, criteria)
	}

	limit := opts.limit
	if limit <= 0 {
		limit = e.cfg.Filter.PageSize
	}
	page := gallery.Paginate(items, opts.page, limit)

	if opts.asJSON {
		return writeJSON(out, petsOutput{
			Data:       domain.RawItems(page.Items),
			Total:      page.Total,
			Page:       page.Page,
			TotalPages: page.TotalPages,
		})
	}

	if page.Total == 0 {
		return renderFooter(out, "Nenhum pet encontrado com esses filtros.")
	}

	rows := make([][]string, 0, len(page.Items))
	for _, c := range page.Items {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			domain.Species(strings.ToUpper(c.Species)).Label(),
			domain.Sex(strings.ToUpper(c.Sex)).Label(),
			domain.PetStatus(strings.ToUpper(c.Status)).Label(),
		})
	}
	if err := renderTable(out, []string{"ID", "Nome", "Espécie", "Sexo", "Status"}, rows); err != nil {
		return err
	}
	return renderFooter(out, fmt.Sprintf("página %d de %d · %d pets", page.Page, page.TotalPages, page.Total))
}

type catalogCode interface {
	~string
	IsValid() bool
}

// unknownFilters warns about selections that match none of the catalog's
// codes. They are still applied.
func unknownFilters(c domain.FilterCriteria) []string {
	var warnings []string
	for _, w := range []string{
		checkFilter("status", c.Status,
			domain.PetStatusAvailable, domain.PetStatusInReview, domain.PetStatusAdopted, domain.PetStatusUnavailable),
		checkFilter("species", c.Species, domain.SpeciesDog, domain.SpeciesCat),
		checkFilter("sex", c.Sex, domain.SexMale, domain.SexFemale),
	} {
		if w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

func checkFilter[T catalogCode](flag, value string, known ...T) string {
	if value == "" || T(strings.ToUpper(value)).IsValid() {
		return ""
	}

	names := make([]string, 0, len(known))
	for _, k := range known {
		if gallery.MatchesField(string(k), value) {
			return ""
		}
		names = append(names, string(k))
	}
	return fmt.Sprintf("warning: --%s %q matches none of %s", flag, value, strings.Join(names, ", "))
}
