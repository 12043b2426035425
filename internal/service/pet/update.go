package pet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

var birthDateAliases = []string{"dataNascimento", "birthDate", "nascimento"}

// Update changes the given fields of a pet listing. The upstream replaces
// listings as a whole, so the current listing is read first and the
// changes are applied over it.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (domain.PetDraft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.PetDraft{}, domain.NewValidationError("id", "required")
	}
	if input.IsEmpty() {
		return domain.PetDraft{}, domain.NewValidationError("input", "nothing to update")
	}
	if err := input.Validate(s.now()); err != nil {
		return domain.PetDraft{}, err
	}

	raw, err := s.api.GetPet(ctx, id)
	if err != nil {
		return domain.PetDraft{}, fmt.Errorf("pet: update %s: %w", id, err)
	}

	merged := input.apply(current(raw))
	draft := merged.draft()
	if err := s.api.UpdatePet(ctx, id, draft); err != nil {
		return domain.PetDraft{}, fmt.Errorf("pet: update %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "pet updated", slog.String("pet_id", id))
	return draft, nil
}

// current reads the writable fields of a stored listing.
func current(raw map[string]any) CreateInput {
	c, _ := gallery.Ingest(raw)
	in := CreateInput{
		Name:        c.Name,
		Species:     c.Species,
		Sex:         c.Sex,
		Status:      c.Status,
		Description: c.Description,
	}
	if v, ok := gallery.ReadField(raw, birthDateAliases); ok {
		// Stored dates may carry a time part.
		in.BirthDate, _, _ = strings.Cut(domain.Stringify(v), "T")
	}
	return in
}
