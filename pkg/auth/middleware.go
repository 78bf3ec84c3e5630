package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const adminKey contextKey = "admin"

// AdminFromContext returns the authenticated admin email.
func AdminFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminKey).(string)
	return v, ok
}

// WithAdmin stores the admin email in the context.
func WithAdmin(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminKey, email)
}

// TokenFromRequest reads the admin token from the session cookie, falling back
// to an Authorization: Bearer header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName()); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func unauthorized(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// RequireAuth rejects requests without a valid admin token and puts the
// token subject into the context.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				unauthorized(w, "unauthorized")
				return
			}

			email, err := ParseToken(token, secret)
			if err != nil {
				unauthorized(w, "invalid_session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), email)))
		})
	}
}

// DevAdminEmail is the identity used when AUTH_REQUIRED=false.
const DevAdminEmail = "dev@localhost"

// DevAuth marks every request as the dev admin. Local development only.
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), DevAdminEmail)))
	})
}
