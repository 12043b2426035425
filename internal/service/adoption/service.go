package adoption

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/miaudota/internal/domain"
)

type shelterAPI interface {
	ListAdoptions(ctx context.Context) ([]domain.Adoption, error)
	GetAdoption(ctx context.Context, id string) (domain.Adoption, error)
	UpdateAdoptionStatus(ctx context.Context, id string, status domain.AdoptionStatus) (domain.Adoption, error)
	CreateAdoption(ctx context.Context, req domain.AdoptionRequest) (domain.Adoption, error)
	DeleteAdoption(ctx context.Context, id string) error
	ListPets(ctx context.Context) ([]domain.Candidate, error)
}

// Service submits, lists and reviews adoption requests.
type Service struct {
	api shelterAPI
	log *slog.Logger
}

// NewService creates a new Adoption service.
func NewService(
	log *slog.Logger,
	api shelterAPI,
) *Service {
	return &Service{
		api: api,
		log: log.With("service", "adoption"),
	}
}
