package handler

import (
	"errors"
	"net/http"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/service"
)

// EmailTemplateHandler serves the canned reply templates (admin only).
type EmailTemplateHandler struct {
	templates service.EmailTemplateService
}

func NewEmailTemplateHandler(templates service.EmailTemplateService) *EmailTemplateHandler {
	return &EmailTemplateHandler{templates: templates}
}

type emailTemplateRequest struct {
	Name    *string `json:"name"`
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

func (h *EmailTemplateHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "name_subject_body_required")
	case errors.Is(err, service.ErrNameTaken):
		writeError(w, http.StatusConflict, "name_taken")
	default:
		writeInternal(w, r, "internal_error", err)
	}
}

// List handles GET /api/email-templates.
func (h *EmailTemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.templates.List(r.Context())
	if err != nil {
		writeInternal(w, r, "internal_error", err)
		return
	}
	if list == nil {
		list = []*model.EmailTemplate{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/email-templates/{id}.
func (h *EmailTemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	t, err := h.templates.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Create handles POST /api/email-templates.
func (h *EmailTemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req emailTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	t := &model.EmailTemplate{Name: deref(req.Name), Subject: deref(req.Subject), Body: deref(req.Body)}
	if err := h.templates.Create(r.Context(), t); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// Update handles PUT /api/email-templates/{id}.
func (h *EmailTemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	var req emailTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	t, err := h.templates.Update(r.Context(), id, model.EmailTemplatePatch{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /api/email-templates/{id}.
func (h *EmailTemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	if err := h.templates.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
