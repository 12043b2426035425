package pet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// Create adds a pet listing.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Candidate, error) {
	if err := input.Validate(s.now()); err != nil {
		return domain.Candidate{}, err
	}

	pet, err := s.api.CreatePet(ctx, input.draft())
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("pet: create: %w", err)
	}

	s.log.InfoContext(ctx, "pet created",
		slog.String("pet_id", pet.ID),
		slog.String("name", pet.Name),
	)
	return pet, nil
}
