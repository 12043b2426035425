package pet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// Delete removes a pet listing.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.api.DeletePet(ctx, id); err != nil {
		return fmt.Errorf("pet: delete %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "pet deleted", slog.String("pet_id", id))
	return nil
}
