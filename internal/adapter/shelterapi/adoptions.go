package shelterapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

var (
	adoptionPetIDAliases = []string{"petId", "pet_id", "idPet"}
	adoptionDateAliases  = []string{"dataAdocao", "data", "createdAt"}
	applicantNameAliases = []string{"nomeCompleto", "nome", "name"}
)

// ListAdoptions returns every adoption request visible to the caller.
func (c *Client) ListAdoptions(ctx context.Context) ([]domain.Adoption, error) {
	var body any
	if err := c.do(ctx, http.MethodGet, "/adocoes", nil, nil, &body); err != nil {
		return nil, err
	}

	list := unwrapList(body)
	out := make([]domain.Adoption, 0, len(list))
	for _, item := range list {
		if raw, ok := item.(map[string]any); ok {
			out = append(out, decodeAdoption(raw))
		}
	}
	return out, nil
}

// GetAdoption returns one adoption request.
func (c *Client) GetAdoption(ctx context.Context, id string) (domain.Adoption, error) {
	var raw map[string]any
	if err := c.do(ctx, http.MethodGet, "/adocoes/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return domain.Adoption{}, err
	}
	if raw == nil {
		return domain.Adoption{}, domain.ErrNotFound
	}
	return decodeAdoption(raw), nil
}

// UpdateAdoptionStatus moves an adoption request to the given status.
// The upstream may answer with the updated record or with no body; in the
// latter case only the ID and status of the result are known.
func (c *Client) UpdateAdoptionStatus(ctx context.Context, id string, status domain.AdoptionStatus) (domain.Adoption, error) {
	payload := map[string]string{"status": status.String()}

	var raw map[string]any
	if err := c.do(ctx, http.MethodPatch, "/adocoes/"+url.PathEscape(id), nil, payload, &raw); err != nil {
		return domain.Adoption{}, err
	}
	if raw == nil {
		return domain.Adoption{ID: id, Status: status}, nil
	}
	return decodeAdoption(raw), nil
}

type addressPayload struct {
	ZipCode    string `json:"cep"`
	Street     string `json:"logradouro"`
	Number     string `json:"numero"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro"`
	City       string `json:"cidade"`
	State      string `json:"estado"`
	Phone      string `json:"telefone"`
}

type adoptionPayload struct {
	PetID         any            `json:"petId"`
	UserID        any            `json:"usuarioId"`
	Date          string         `json:"dataAdocao"`
	Reason        string         `json:"motivo"`
	AcceptedTerms bool           `json:"aceitouTermo"`
	Address       addressPayload `json:"endereco"`
}

// CreateAdoption submits an adoption request. The upstream may answer with
// the created record or with no body; in the latter case the result only
// carries what was sent, in PENDENTE status.
func (c *Client) CreateAdoption(ctx context.Context, req domain.AdoptionRequest) (domain.Adoption, error) {
	a := req.Address
	payload := adoptionPayload{
		PetID:         idValue(req.PetID),
		UserID:        idValue(req.UserID),
		Date:          midnightUTC(req.Date),
		Reason:        req.Reason,
		AcceptedTerms: req.AcceptedTerms,
		Address: addressPayload{
			ZipCode:    a.ZipCode,
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			District:   a.District,
			City:       a.City,
			State:      a.State,
			Phone:      a.Phone,
		},
	}

	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, "/adocoes", nil, payload, &raw); err != nil {
		return domain.Adoption{}, err
	}
	if raw == nil {
		return domain.Adoption{
			PetID:         req.PetID,
			Status:        domain.AdoptionStatusPending,
			Date:          payload.Date,
			Reason:        req.Reason,
			AcceptedTerms: req.AcceptedTerms,
		}, nil
	}
	return decodeAdoption(raw), nil
}

// DeleteAdoption removes an adoption request.
func (c *Client) DeleteAdoption(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/adocoes/"+url.PathEscape(id), nil, nil, nil)
}

// idValue sends numeric identifiers as JSON numbers, anything else as a
// string.
func idValue(id string) any {
	if _, err := strconv.ParseInt(id, 10, 64); err == nil {
		return json.Number(id)
	}
	return id
}

// midnightUTC renders the request date the way the shelter API stores it.
func midnightUTC(t time.Time) string {
	return t.Format(time.DateOnly) + "T00:00:00.000Z"
}

// decodeAdoption maps a decoded /adocoes record. Missing attributes stay
// empty; the raw record is kept for re-emission.
func decodeAdoption(raw map[string]any) domain.Adoption {
	a := domain.Adoption{
		ID:     stringField(raw, []string{"id", "_id"}),
		PetID:  stringField(raw, adoptionPetIDAliases),
		Status: domain.AdoptionStatus(strings.ToUpper(stringField(raw, []string{"status"}))),
		Date:   stringField(raw, adoptionDateAliases),
		Reason: stringField(raw, []string{"motivo", "reason"}),
		Raw:    raw,
	}

	if v, ok := raw["aceitouTermo"].(bool); ok {
		a.AcceptedTerms = v
	}

	if pet, ok := raw["pet"].(map[string]any); ok {
		a.Pet = pet
		if a.PetID == "" {
			a.PetID = stringField(pet, []string{"id", "_id"})
		}
	}

	if user, ok := raw["usuario"].(map[string]any); ok {
		a.Applicant = domain.Applicant{
			Name:  stringField(user, applicantNameAliases),
			Email: stringField(user, []string{"email"}),
		}
	}

	return a
}

func stringField(obj map[string]any, aliases []string) string {
	v, ok := gallery.ReadField(obj, aliases)
	if !ok {
		return ""
	}
	return domain.Stringify(v)
}
