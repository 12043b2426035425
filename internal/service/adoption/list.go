package adoption

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

// List returns the adoption requests matching the criteria, in upstream
// order. Status criteria match the adoption's own status; the free-text,
// species and sex criteria match its pet.
func (s *Service) List(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Adoption, error) {
	adoptions, err := s.api.ListAdoptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("adoption: list: %w", err)
	}

	s.hydrate(ctx, adoptions)

	out := make([]domain.Adoption, 0, len(adoptions))
	for _, a := range adoptions {
		c, ok := gallery.Ingest(a.Raw)
		if !ok {
			continue
		}
		if gallery.Matches(c, criteria) {
			out = append(out, a)
		}
	}

	s.log.DebugContext(ctx, "adoptions listed",
		slog.Int("total", len(adoptions)),
		slog.Int("matched", len(out)),
	)
	return out, nil
}

// Get returns one adoption request with its pet attached when possible.
func (s *Service) Get(ctx context.Context, id string) (domain.Adoption, error) {
	id, err := requireID(id)
	if err != nil {
		return domain.Adoption{}, err
	}

	a, err := s.api.GetAdoption(ctx, id)
	if err != nil {
		return domain.Adoption{}, fmt.Errorf("adoption: get %s: %w", id, err)
	}

	one := []domain.Adoption{a}
	s.hydrate(ctx, one)
	return one[0], nil
}
