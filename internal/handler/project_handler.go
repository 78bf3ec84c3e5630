package handler

import (
	"errors"
	"net/http"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/service"
)

// ProjectHandler serves the portfolio project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// projectRequest is the create/update body. Absent fields stay nil so an
// update only touches what was sent.
type projectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	TechStack   *[]string `json:"tech_stack"`
	Category    *string   `json:"category"`
	LiveURL     *string   `json:"live_url"`
	RepoURL     *string   `json:"repo_url"`
}

func (req projectRequest) patch() model.ProjectPatch {
	return model.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		Category:    req.Category,
		LiveURL:     req.LiveURL,
		RepoURL:     req.RepoURL,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		writeInternal(w, r, "internal_error", err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeInternal(w, r, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create handles POST /api/projects (admin).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	project := &model.Project{
		Title:       deref(req.Title),
		Description: deref(req.Description),
		TechStack:   deref(req.TechStack),
		Category:    deref(req.Category),
		LiveURL:     deref(req.LiveURL),
		RepoURL:     deref(req.RepoURL),
	}
	if err := h.projectService.Create(r.Context(), project); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_input")
			return
		}
		writeInternal(w, r, "create_failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// Update handles PUT /api/projects/{id} (admin).
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	project, err := h.projectService.Update(r.Context(), r.PathValue("id"), req.patch())
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, project)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input")
	default:
		writeInternal(w, r, "update_failed", err)
	}
}

// Delete handles DELETE /api/projects/{id} (admin).
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeInternal(w, r, "delete_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Reorder handles PUT /api/projects/reorder (admin). ids lists every project
// in its new display order; unknown ids are ignored.
func (h *ProjectHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	switch err := h.projectService.Reorder(r.Context(), req.IDs); {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_ids")
	default:
		writeInternal(w, r, "reorder_failed", err)
	}
}
