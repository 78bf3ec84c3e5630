package handler

import (
	"errors"
	"net/http"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/service"
)

// ArticleHandler serves blog articles. Public routes only ever see published ones.
type ArticleHandler struct {
	articles service.ArticleService
}

func NewArticleHandler(articles service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

type articleRequest struct {
	Title   *string `json:"title"`
	Slug    *string `json:"slug"`
	Excerpt *string `json:"excerpt"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

func (h *ArticleHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input")
	case errors.Is(err, service.ErrSlugTaken):
		writeError(w, http.StatusConflict, "slug_taken")
	default:
		writeInternal(w, r, "internal_error", err)
	}
}

func writeArticles(w http.ResponseWriter, list []*model.Article) {
	if list == nil {
		list = []*model.Article{}
	}
	writeJSON(w, http.StatusOK, list)
}

// ListPublished handles GET /api/articles.
func (h *ArticleHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	list, err := h.articles.ListPublished(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		writeInternal(w, r, "internal_error", err)
		return
	}
	writeArticles(w, list)
}

// GetBySlug handles GET /api/articles/{slug}.
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	a, err := h.articles.GetPublishedBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// ListAll handles GET /api/admin/articles, drafts included.
func (h *ArticleHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.articles.ListAll(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		writeInternal(w, r, "internal_error", err)
		return
	}
	writeArticles(w, list)
}

// Get handles GET /api/admin/articles/{id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.articles.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Create handles POST /api/articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	a := &model.Article{
		Title:   deref(req.Title),
		Slug:    deref(req.Slug),
		Excerpt: deref(req.Excerpt),
		Content: deref(req.Content),
		Status:  deref(req.Status),
	}
	if err := h.articles.Create(r.Context(), a); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Update handles PUT /api/articles/{id}.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	a, err := h.articles.Update(r.Context(), r.PathValue("id"), model.ArticlePatch{
		Title:   req.Title,
		Slug:    req.Slug,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Delete handles DELETE /api/articles/{id}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.articles.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
