package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/miaudota/internal/domain"
)

const refreshKey = "pets"

// snapshot returns the cached listing, refreshing it when older than the
// TTL. A failed refresh falls back to the previous snapshot if any.
func (s *Service) snapshot(ctx context.Context) ([]domain.Candidate, error) {
	if items, ok := s.fresh(); ok {
		return items, nil
	}

	// Waiters share one upstream call; it must outlive any single caller.
	ch := s.flight.DoChan(refreshKey, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err == nil {
			return res.Val.([]domain.Candidate), nil
		}
		if items, ok := s.stale(); ok {
			s.log.WarnContext(ctx, "catalog refresh failed, serving stale snapshot",
				slog.String("error", res.Err.Error()),
				slog.Int("items", len(items)),
			)
			return items, nil
		}
		return nil, res.Err
	}
}

func (s *Service) refresh(ctx context.Context) ([]domain.Candidate, error) {
	items, err := s.api.ListPets(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: refresh: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.fetchedAt = s.now()
	s.loaded = true
	s.mu.Unlock()

	s.log.DebugContext(ctx, "catalog refreshed", slog.Int("items", len(items)))
	return items, nil
}

func (s *Service) fresh() ([]domain.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded || s.ttl <= 0 || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	return s.items, true
}

func (s *Service) stale() ([]domain.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.loaded
}
