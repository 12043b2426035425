package pet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/miaudota/internal/domain"
)

//go:generate moq -out pet_api_mock_test.go -pkg pet . petAPI

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(mock *petAPIMock) *Service {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), mock)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func ptr(s string) *string { return &s }

func validCreateInput() CreateInput {
	return CreateInput{
		Name:        " Rex ",
		BirthDate:   "2022-03-10",
		Species:     "cachorro",
		Sex:         "macho",
		Status:      "disponivel",
		Description: "Brincalhão e muito dócil",
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_NormalizesCodes(t *testing.T) {
	t.Parallel()

	mock := &petAPIMock{
		CreatePetFunc: func(ctx context.Context, draft domain.PetDraft) (domain.Candidate, error) {
			return domain.Candidate{ID: "9", Name: draft.Name}, nil
		},
	}

	pet, err := newTestService(mock).Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, "9", pet.ID)

	calls := mock.CreatePetCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.PetDraft{
		Name:        "Rex",
		BirthDate:   "2022-03-10",
		Species:     domain.SpeciesDog,
		Sex:         domain.SexMale,
		Status:      domain.PetStatusAvailable,
		Description: "Brincalhão e muito dócil",
	}, calls[0].Draft)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*CreateInput)
		wantField string
	}{
		{name: "short name", mutate: func(i *CreateInput) { i.Name = "R" }, wantField: "name"},
		{name: "bad date", mutate: func(i *CreateInput) { i.BirthDate = "10/03/2022" }, wantField: "birth_date"},
		{name: "future birth", mutate: func(i *CreateInput) { i.BirthDate = "2030-01-01" }, wantField: "birth_date"},
		{name: "unknown species", mutate: func(i *CreateInput) { i.Species = "COBRA" }, wantField: "species"},
		{name: "unknown sex", mutate: func(i *CreateInput) { i.Sex = "X" }, wantField: "sex"},
		{name: "unknown status", mutate: func(i *CreateInput) { i.Status = "VENDIDO" }, wantField: "status"},
		{name: "short description", mutate: func(i *CreateInput) { i.Description = "fofo" }, wantField: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &petAPIMock{}
			input := validCreateInput()
			tt.mutate(&input)

			_, err := newTestService(mock).Create(context.Background(), input)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.wantField, ve.Errors[0].Field)
			assert.Empty(t, mock.CreatePetCalls())
		})
	}
}

func TestCreate_BirthDateIsOptional(t *testing.T) {
	t.Parallel()

	mock := &petAPIMock{
		CreatePetFunc: func(ctx context.Context, draft domain.PetDraft) (domain.Candidate, error) {
			return domain.Candidate{}, nil
		},
	}
	input := validCreateInput()
	input.BirthDate = ""

	_, err := newTestService(mock).Create(context.Background(), input)
	require.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func storedPet() map[string]any {
	return map[string]any{
		"id":             "5",
		"nome":           "Mimi",
		"especie":        "GATO",
		"sexo":           "FEMEA",
		"status":         "DISPONIVEL",
		"descricao":      "Gata calma e carinhosa",
		"dataNascimento": "2021-08-01T00:00:00.000Z",
	}
}

func TestUpdate_MergesOverCurrentListing(t *testing.T) {
	t.Parallel()

	mock := &petAPIMock{
		GetPetFunc: func(ctx context.Context, id string) (map[string]any, error) {
			return storedPet(), nil
		},
		UpdatePetFunc: func(ctx context.Context, id string, draft domain.PetDraft) error {
			return nil
		},
	}

	draft, err := newTestService(mock).Update(context.Background(), " 5 ", UpdateInput{Status: ptr("adotado")})
	require.NoError(t, err)

	want := domain.PetDraft{
		Name:        "Mimi",
		BirthDate:   "2021-08-01",
		Species:     domain.SpeciesCat,
		Sex:         domain.SexFemale,
		Status:      domain.PetStatusAdopted,
		Description: "Gata calma e carinhosa",
	}
	assert.Equal(t, want, draft)

	calls := mock.UpdatePetCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "5", calls[0].ID)
	assert.Equal(t, want, calls[0].Draft)
}

func TestUpdate_RejectsBeforeCallingUpstream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    string
		input UpdateInput
	}{
		{name: "missing id", id: "", input: UpdateInput{Name: ptr("Rex")}},
		{name: "nothing to change", id: "5", input: UpdateInput{}},
		{name: "invalid field", id: "5", input: UpdateInput{Sex: ptr("?")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &petAPIMock{}
			_, err := newTestService(mock).Update(context.Background(), tt.id, tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, mock.GetPetCalls())
			assert.Empty(t, mock.UpdatePetCalls())
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	mock := &petAPIMock{
		GetPetFunc: func(ctx context.Context, id string) (map[string]any, error) {
			return nil, domain.ErrNotFound
		},
	}

	_, err := newTestService(mock).Update(context.Background(), "99", UpdateInput{Name: ptr("Rex")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, mock.UpdatePetCalls())
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete(t *testing.T) {
	t.Parallel()

	mock := &petAPIMock{
		DeletePetFunc: func(ctx context.Context, id string) error {
			if id == "5" {
				return nil
			}
			return domain.ErrForbidden
		},
	}
	svc := newTestService(mock)

	require.NoError(t, svc.Delete(context.Background(), "5"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "6"), domain.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), " "), domain.ErrValidation)
	assert.Len(t, mock.DeletePetCalls(), 2)
}
