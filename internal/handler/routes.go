package handler

import (
	"net/http"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Routes holds every API handler and the guards placed in front of them.
type Routes struct {
	Health    *Handler
	Auth      *AuthHandler
	Messages  *MessageHandler
	Templates *EmailTemplateHandler
	Projects  *ProjectHandler
	Images    *ImageHandler
	Articles  *ArticleHandler
	SEO       *SEOHandler

	// RequireAdmin guards the dashboard routes.
	RequireAdmin Middleware
	// ContactLimit rate-limits the public contact form. Nil means unlimited.
	ContactLimit Middleware
}

// Register mounts every route on mux.
func (rt Routes) Register(mux *http.ServeMux) {
	admin := func(f http.HandlerFunc) http.Handler {
		if rt.RequireAdmin == nil {
			return f
		}
		return rt.RequireAdmin(f)
	}
	contact := http.Handler(http.HandlerFunc(rt.Messages.Submit))
	if rt.ContactLimit != nil {
		contact = rt.ContactLimit(contact)
	}

	mux.HandleFunc("GET /api/health", rt.Health.Health)

	// Auth
	mux.HandleFunc("POST /api/auth/login", rt.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", rt.Auth.Logout)
	mux.HandleFunc("GET /api/auth/github/login", rt.Auth.GitHubLoginURL)
	mux.HandleFunc("GET /api/auth/github/callback", rt.Auth.GitHubCallback)
	mux.Handle("GET /api/auth/me", admin(rt.Auth.Me))

	// Contact pipeline
	mux.Handle("POST /api/messages", contact)
	mux.Handle("GET /api/messages", admin(rt.Messages.List))
	mux.Handle("GET /api/messages/{id}", admin(rt.Messages.Get))
	mux.Handle("DELETE /api/messages/{id}", admin(rt.Messages.Delete))
	mux.Handle("POST /api/messages/bulk-delete", admin(rt.Messages.BulkDelete))
	mux.Handle("POST /api/messages/{id}/reply", admin(rt.Messages.Reply))
	mux.Handle("GET /api/messages/{id}/reply-draft", admin(rt.Messages.ReplyDraft))

	// Email templates
	mux.Handle("GET /api/email-templates", admin(rt.Templates.List))
	mux.Handle("POST /api/email-templates", admin(rt.Templates.Create))
	mux.Handle("GET /api/email-templates/{id}", admin(rt.Templates.Get))
	mux.Handle("PUT /api/email-templates/{id}", admin(rt.Templates.Update))
	mux.Handle("DELETE /api/email-templates/{id}", admin(rt.Templates.Delete))

	// Projects
	mux.HandleFunc("GET /api/projects", rt.Projects.List)
	mux.HandleFunc("GET /api/projects/{id}", rt.Projects.Get)
	mux.Handle("POST /api/projects", admin(rt.Projects.Create))
	mux.Handle("PUT /api/projects/reorder", admin(rt.Projects.Reorder))
	mux.Handle("PUT /api/projects/{id}", admin(rt.Projects.Update))
	mux.Handle("DELETE /api/projects/{id}", admin(rt.Projects.Delete))
	mux.Handle("POST /api/projects/{id}/image", admin(rt.Images.Upload))
	mux.Handle("DELETE /api/projects/{id}/image", admin(rt.Images.Delete))

	// Articles
	mux.HandleFunc("GET /api/articles", rt.Articles.ListPublished)
	mux.HandleFunc("GET /api/articles/{slug}", rt.Articles.GetBySlug)
	mux.Handle("GET /api/admin/articles", admin(rt.Articles.ListAll))
	mux.Handle("GET /api/admin/articles/{id}", admin(rt.Articles.Get))
	mux.Handle("POST /api/articles", admin(rt.Articles.Create))
	mux.Handle("PUT /api/articles/{id}", admin(rt.Articles.Update))
	mux.Handle("DELETE /api/articles/{id}", admin(rt.Articles.Delete))

	// SEO
	mux.HandleFunc("GET /api/seo", rt.SEO.List)
	mux.HandleFunc("GET /api/seo/{page}", rt.SEO.Get)
	mux.Handle("PUT /api/seo/{page}", admin(rt.SEO.Upsert))
}
