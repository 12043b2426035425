package adoption

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// SetStatus moves an adoption request to a new review status.
func (s *Service) SetStatus(ctx context.Context, id, status string) (domain.Adoption, error) {
	id, err := requireID(id)
	if err != nil {
		return domain.Adoption{}, err
	}

	st := domain.AdoptionStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !st.IsValid() {
		return domain.Adoption{}, domain.NewValidationError("status",
			fmt.Sprintf("must be one of %s, %s, %s", domain.AdoptionStatusPending, domain.AdoptionStatusApproved, domain.AdoptionStatusRejected))
	}

	a, err := s.api.UpdateAdoptionStatus(ctx, id, st)
	if err != nil {
		return domain.Adoption{}, fmt.Errorf("adoption: set status %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "adoption status updated",
		slog.String("adoption_id", id),
		slog.String("status", st.String()),
	)
	return a, nil
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.NewValidationError("id", "required")
	}
	return id, nil
}
