package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

// Search filters the catalog and returns the requested page.
func (s *Service) Search(ctx context.Context, criteria domain.FilterCriteria, page, limit int) (gallery.Page, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return gallery.Page{}, err
	}
	return gallery.Paginate(gallery.FilterCandidates(items, criteria), page, limit), nil
}

// Ping reports whether a catalog can be served, refreshing the snapshot
// when it is out of date.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.snapshot(ctx)
	return err
}

// Get returns one pet of the catalog by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Candidate, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return domain.Candidate{}, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Candidate{}, fmt.Errorf("catalog: pet %s: %w", id, domain.ErrNotFound)
}
