package handler

import (
	"errors"
	"net/http"
	"path"

	"github.com/abdhesh369/portfolio-backend/internal/logging"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/service"
	"github.com/abdhesh369/portfolio-backend/internal/storage"
	"github.com/google/uuid"
)

const maxImageSize = 2 << 20 // 2 MB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageHandler uploads and removes project cover images.
type ImageHandler struct {
	storage        storage.Storage
	projectService service.ProjectService
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(store storage.Storage, ps service.ProjectService) *ImageHandler {
	return &ImageHandler{storage: store, projectService: ps}
}

// removeOld deletes the file behind a previous image URL. Failures are only logged.
func (h *ImageHandler) removeOld(r *http.Request, imageURL string) {
	if imageURL == "" {
		return
	}
	key, ok := h.storage.KeyFromURL(imageURL)
	if !ok {
		return
	}
	if err := h.storage.Delete(r.Context(), key); err != nil {
		logging.FromContext(r.Context()).Warn("old image delete failed", "error", err, "key", key)
	}
}

// Upload handles POST /api/projects/{id}/image (admin, multipart field "image").
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	project, err := h.projectService.GetByID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeInternal(w, r, "internal_error", err)
		return
	}

	// The form overhead is small next to the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+64<<10)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image_required")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_content_type")
		return
	}

	key := path.Join("projects", projectID, uuid.NewString()+ext)
	imageURL, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		writeInternal(w, r, "upload_failed", err)
		return
	}

	if err := h.projectService.SetImageURL(r.Context(), projectID, imageURL); err != nil {
		_ = h.storage.Delete(r.Context(), key)
		writeInternal(w, r, "update_failed", err)
		return
	}
	h.removeOld(r, project.ImageURL)

	writeJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}

// Delete handles DELETE /api/projects/{id}/image (admin).
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	project, err := h.projectService.GetByID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeInternal(w, r, "internal_error", err)
		return
	}

	if err := h.projectService.SetImageURL(r.Context(), projectID, ""); err != nil {
		writeInternal(w, r, "update_failed", err)
		return
	}
	h.removeOld(r, project.ImageURL)

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
