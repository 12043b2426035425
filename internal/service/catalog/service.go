package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/miaudota/internal/config"
	"github.com/heartmarshall/miaudota/internal/domain"
)

type petLister interface {
	ListPets(ctx context.Context) ([]domain.Candidate, error)
}

// Service serves filtered pages of the pets catalog from an in-memory
// snapshot of the shelter listing.
type Service struct {
	api    petLister
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
	flight singleflight.Group

	mu        sync.RWMutex
	items     []domain.Candidate
	fetchedAt time.Time
	loaded    bool
}

// NewService creates a new Catalog service. A zero TTL refetches the
// listing on every request.
func NewService(
	log *slog.Logger,
	api petLister,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		api: api,
		ttl: cfg.TTL,
		now: time.Now,
		log: log.With("service", "catalog"),
	}
}

// Stats describes the current snapshot.
type Stats struct {
	Items     int
	FetchedAt time.Time
	Loaded    bool
}

// Stats returns the size and age of the current snapshot.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Items: len(s.items), FetchedAt: s.fetchedAt, Loaded: s.loaded}
}
