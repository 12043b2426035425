package adoption

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes an adoption request.
func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}

	if err := s.api.DeleteAdoption(ctx, id); err != nil {
		return fmt.Errorf("adoption: delete %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "adoption deleted", slog.String("adoption_id", id))
	return nil
}
