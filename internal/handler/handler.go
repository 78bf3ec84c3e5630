package handler

import (
	"net/http"

	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/rs/cors"
)

// Handler serves endpoints that need only the database handle.
type Handler struct {
	db repository.DB
}

func New(db repository.DB) *Handler {
	return &Handler{db: db}
}

// CORS allows the configured origins with credentials so the admin session
// cookie travels with cross-origin requests from the frontend.
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}
