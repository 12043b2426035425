package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

// MaxPageSize caps the limit query parameter.
const MaxPageSize = 100

// petCatalog defines the minimal interface needed by PetsHandler.
type petCatalog interface {
	Search(ctx context.Context, criteria domain.FilterCriteria, page, limit int) (gallery.Page, error)
	Get(ctx context.Context, id string) (domain.Candidate, error)
}

// PetsHandler serves the filtered pets listing.
type PetsHandler struct {
	catalog  petCatalog
	pageSize int
	log      *slog.Logger
}

// NewPetsHandler creates a PetsHandler. pageSize is used when the request
// carries no limit.
func NewPetsHandler(catalog petCatalog, pageSize int, logger *slog.Logger) *PetsHandler {
	return &PetsHandler{catalog: catalog, pageSize: pageSize, log: logger.With("handler", "pets")}
}

type listResponse struct {
	Data       []map[string]any `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// List handles GET /api/pets?q=&status=&species=&sex=&page=&limit=.
func (h *PetsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), 1, "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := intParam(q.Get("limit"), h.pageSize, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit = min(limit, MaxPageSize)

	criteria := domain.NewFilterCriteria(q.Get("q"), q.Get("status"), q.Get("species"), q.Get("sex"))

	result, err := h.catalog.Search(r.Context(), criteria, page, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data:       domain.RawItems(result.Items),
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /api/pets/{id}.
func (h *PetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		handleError(h.log, w, r, domain.NewValidationError("id", "required"))
		return
	}

	pet, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pet.Raw)
}

// intParam parses a positive integer query parameter; empty selects def.
func intParam(raw string, def int, field string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domain.NewValidationError(field, "must be a positive integer")
	}
	return n, nil
}
