package pet

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/miaudota/internal/domain"
)

type petAPI interface {
	GetPet(ctx context.Context, id string) (map[string]any, error)
	CreatePet(ctx context.Context, draft domain.PetDraft) (domain.Candidate, error)
	UpdatePet(ctx context.Context, id string, draft domain.PetDraft) error
	DeletePet(ctx context.Context, id string) error
}

// Service manages pet listings on behalf of shelter administrators.
type Service struct {
	api petAPI
	now func() time.Time
	log *slog.Logger
}

// NewService creates a new Pet service.
func NewService(
	log *slog.Logger,
	api petAPI,
) *Service {
	return &Service{
		api: api,
		now: time.Now,
		log: log.With("service", "pet"),
	}
}
