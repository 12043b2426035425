package shelterapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

// SearchPets queries the pets listing with the non-empty criteria as query
// parameters (q, status, species, sex).
func (c *Client) SearchPets(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Candidate, error) {
	query := url.Values{}
	for k, v := range criteria.Params() {
		query.Set(k, v)
	}

	items, err := c.listPets(ctx, query)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "pets search",
		slog.String("q", criteria.Query),
		slog.String("status", criteria.Status),
		slog.String("species", criteria.Species),
		slog.String("sex", criteria.Sex),
		slog.Int("items", len(items)),
	)
	return items, nil
}

// ListPets returns the whole pets catalog.
func (c *Client) ListPets(ctx context.Context) ([]domain.Candidate, error) {
	return c.listPets(ctx, nil)
}

func (c *Client) listPets(ctx context.Context, query url.Values) ([]domain.Candidate, error) {
	var body any
	if err := c.do(ctx, http.MethodGet, "/pets", query, nil, &body); err != nil {
		return nil, err
	}
	return gallery.IngestAll(unwrapList(body)), nil
}

// GetPet returns one pet object.
func (c *Client) GetPet(ctx context.Context, id string) (map[string]any, error) {
	var pet map[string]any
	if err := c.do(ctx, http.MethodGet, "/pets/"+url.PathEscape(id), nil, nil, &pet); err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domain.ErrNotFound
	}
	return pet, nil
}

type petPayload struct {
	Name        string `json:"nome"`
	BirthDate   string `json:"dataNascimento,omitempty"`
	Species     string `json:"especie"`
	Sex         string `json:"sexo"`
	Status      string `json:"status"`
	Description string `json:"descricao"`
}

func newPetPayload(d domain.PetDraft) petPayload {
	return petPayload{
		Name:        d.Name,
		BirthDate:   d.BirthDate,
		Species:     d.Species.String(),
		Sex:         d.Sex.String(),
		Status:      d.Status.String(),
		Description: d.Description,
	}
}

// CreatePet adds a pet listing. When the upstream answers without a body
// the result is built from the draft and has no ID.
func (c *Client) CreatePet(ctx context.Context, draft domain.PetDraft) (domain.Candidate, error) {
	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, "/pets", nil, newPetPayload(draft), &raw); err != nil {
		return domain.Candidate{}, err
	}
	if raw == nil {
		raw = map[string]any{
			"nome":      draft.Name,
			"especie":   draft.Species.String(),
			"sexo":      draft.Sex.String(),
			"status":    draft.Status.String(),
			"descricao": draft.Description,
		}
	}
	pet, _ := gallery.Ingest(raw)
	return pet, nil
}

// UpdatePet replaces the writable fields of a pet listing.
func (c *Client) UpdatePet(ctx context.Context, id string, draft domain.PetDraft) error {
	return c.do(ctx, http.MethodPut, "/pets/"+url.PathEscape(id), nil, newPetPayload(draft), nil)
}

// DeletePet removes a pet listing.
func (c *Client) DeletePet(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pets/"+url.PathEscape(id), nil, nil, nil)
}

// unwrapList finds the item array in a listing response: a bare array, or
// an object carrying it under data, pets, items, data.items or data.pets.
// Any other shape yields an empty list.
func unwrapList(body any) []any {
	if list, ok := body.([]any); ok {
		return list
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return []any{}
	}
	for _, key := range []string{"data", "pets", "items"} {
		if list, ok := obj[key].([]any); ok {
			return list
		}
	}

	if data, ok := obj["data"].(map[string]any); ok {
		for _, key := range []string{"items", "pets"} {
			if list, ok := data[key].([]any); ok {
				return list
			}
		}
	}
	return []any{}
}
