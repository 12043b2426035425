package adoption

import (
	"context"
	"log/slog"
	"maps"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// petKey is where a hydrated pet is attached on the raw record, matching
// the shape of records that arrive with their pet embedded.
const petKey = "pet"

// hydrate attaches the pet object to adoptions that only reference it by
// id. All lookups are issued before any is awaited so they share a batch.
// A failed lookup leaves the adoption as it was.
func (s *Service) hydrate(ctx context.Context, adoptions []domain.Adoption) {
	loader := newPetLoader(s.api)

	thunks := make([]dataloader.Thunk[map[string]any], len(adoptions))
	for i, a := range adoptions {
		if a.HasPet() || a.PetID == "" {
			continue
		}
		thunks[i] = loader.Load(ctx, a.PetID)
	}

	for i, thunk := range thunks {
		if thunk == nil {
			continue
		}
		pet, err := thunk()
		if err != nil {
			s.log.WarnContext(ctx, "pet lookup failed",
				slog.String("adoption_id", adoptions[i].ID),
				slog.String("pet_id", adoptions[i].PetID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if pet == nil {
			continue
		}
		adoptions[i] = withPet(adoptions[i], pet)
	}
}

func withPet(a domain.Adoption, pet map[string]any) domain.Adoption {
	raw := make(map[string]any, len(a.Raw)+1)
	maps.Copy(raw, a.Raw)
	raw[petKey] = pet

	a.Pet = pet
	a.Raw = raw
	return a
}
