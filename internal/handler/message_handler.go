package handler

import (
	"errors"
	"net"
	"net/http"

	"github.com/abdhesh369/portfolio-backend/internal/logging"
	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/service"
	"github.com/abdhesh369/portfolio-backend/internal/validate"
	"github.com/abdhesh369/portfolio-backend/pkg/mailer"
)

// Notifier receives stored messages for owner notification. Enqueue must not block.
type Notifier interface {
	Enqueue(msg model.Message)
}

// ClientIPFunc resolves the client address of a request.
type ClientIPFunc func(r *http.Request) string

// MessageHandler serves the contact form and the admin inbox.
type MessageHandler struct {
	messages service.MessageService
	replies  service.ReplyService
	notifier Notifier
	clientIP ClientIPFunc
}

// NewMessageHandler creates a MessageHandler. clientIP may be nil, in which
// case the connection's remote address is used.
func NewMessageHandler(messages service.MessageService, replies service.ReplyService, notifier Notifier, clientIP ClientIPFunc) *MessageHandler {
	if clientIP == nil {
		clientIP = remoteHost
	}
	return &MessageHandler{messages: messages, replies: replies, notifier: notifier, clientIP: clientIP}
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// contactResponse is the public shape of every contact-form answer.
type contactResponse struct {
	Success bool                  `json:"success,omitempty"`
	Message string                `json:"message"`
	Data    *model.SubmitResult   `json:"data,omitempty"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

func writeContactError(w http.ResponseWriter, status int, msg string, fields []validate.FieldError) {
	if fields == nil {
		fields = []validate.FieldError{}
	}
	writeJSON(w, status, struct {
		Message string                `json:"message"`
		Errors  []validate.FieldError `json:"errors"`
	}{msg, fields})
}

// Submit handles POST /api/messages (public, rate limited). Honeypot hits get
// the same 201 as genuine messages; only stored messages are notified.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in service.ContactSubmission
	if err := decodeJSON(r, &in); err != nil {
		if tooLarge(err) {
			writeContactError(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			return
		}
		writeContactError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	sub, err := h.messages.Submit(r.Context(), in, h.clientIP(r))
	if err != nil {
		if fields := validate.Fields(err); fields != nil {
			writeContactError(w, http.StatusBadRequest, "Validation failed", fields)
			return
		}
		logging.FromContext(r.Context()).Error("contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactResponse{Message: "Failed to send message"})
		return
	}

	writeJSON(w, http.StatusCreated, contactResponse{
		Success: true,
		Message: "Message sent successfully",
		Data:    &sub.Result,
	})

	if sub.Stored != nil && h.notifier != nil {
		h.notifier.Enqueue(*sub.Stored)
	}
}

// List handles GET /api/messages (admin). Newest first; ?limit=&offset=.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.List(r.Context(), model.MessageListOptions{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		writeInternal(w, r, "internal_error", err)
		return
	}
	if msgs == nil {
		msgs = []*model.Message{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

// Get handles GET /api/messages/{id} (admin).
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	msg, err := h.messages.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeInternal(w, r, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Delete handles DELETE /api/messages/{id} (admin).
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	if err := h.messages.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeInternal(w, r, "delete_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// BulkDelete handles POST /api/messages/bulk-delete (admin). Missing ids are not errors.
func (h *MessageHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	n, err := h.messages.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_ids")
			return
		}
		writeInternal(w, r, "delete_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": n})
}

// Reply handles POST /api/messages/{id}/reply (admin). The send is synchronous
// and its outcome is reported to the caller.
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: "Invalid message id"})
		return
	}

	var req struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: "Invalid request body"})
		return
	}

	err := h.replies.Reply(r.Context(), id, req.Subject, req.Body)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: "Reply sent successfully"})
	case errors.Is(err, service.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: "Subject and body are required"})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, contactResponse{Message: "Message not found"})
	case errors.Is(err, mailer.ErrNotConfigured):
		logging.FromContext(r.Context()).Error("reply not sent, email service not configured", "message_id", id)
		writeJSON(w, http.StatusInternalServerError, contactResponse{Message: "Email service is not configured"})
	default:
		logging.FromContext(r.Context()).Error("reply send failed", "error", err, "message_id", id)
		writeJSON(w, http.StatusInternalServerError, contactResponse{Message: "Failed to send reply"})
	}
}

// ReplyDraft handles GET /api/messages/{id}/reply-draft?template_id=N (admin).
func (h *MessageHandler) ReplyDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	templateID := int64(queryInt(r, "template_id", 0))
	if templateID <= 0 {
		writeError(w, http.StatusBadRequest, "template_id_required")
		return
	}

	draft, err := h.replies.Draft(r.Context(), id, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeInternal(w, r, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}
