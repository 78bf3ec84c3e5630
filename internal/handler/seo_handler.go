package handler

import (
	"errors"
	"net/http"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/service"
)

// SEOHandler serves per-page meta tags.
type SEOHandler struct {
	seo service.SEOService
}

func NewSEOHandler(seo service.SEOService) *SEOHandler {
	return &SEOHandler{seo: seo}
}

// List handles GET /api/seo.
func (h *SEOHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.seo.List(r.Context())
	if err != nil {
		writeInternal(w, r, "internal_error", err)
		return
	}
	if list == nil {
		list = []*model.SEOSetting{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/seo/{page}.
func (h *SEOHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.seo.Get(r.Context(), r.PathValue("page"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeInternal(w, r, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Upsert handles PUT /api/seo/{page} (admin). The page comes from the path.
func (h *SEOHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Keywords    string `json:"keywords"`
		OGImage     string `json:"og_image"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	s := &model.SEOSetting{
		Page:        r.PathValue("page"),
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		OGImage:     req.OGImage,
	}
	if err := h.seo.Upsert(r.Context(), s); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_input")
			return
		}
		writeInternal(w, r, "upsert_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
