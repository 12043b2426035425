package adoption

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// Submit sends a new adoption request for review.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (domain.Adoption, error) {
	if err := input.Validate(); err != nil {
		return domain.Adoption{}, err
	}

	req := input.request()
	a, err := s.api.CreateAdoption(ctx, req)
	if err != nil {
		return domain.Adoption{}, fmt.Errorf("adoption: submit for pet %s: %w", req.PetID, err)
	}

	s.log.InfoContext(ctx, "adoption requested",
		slog.String("adoption_id", a.ID),
		slog.String("pet_id", req.PetID),
	)
	return a, nil
}
