package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ParseEmails splits a comma-separated email list, trimming and lower-casing entries.
func ParseEmails(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// RequireAdmin must run after RequireAuth. It rejects tokens whose subject is
// no longer one of the configured admin emails, so rotating ADMIN_EMAIL
// invalidates sessions issued to the previous address.
func RequireAdmin(adminEmails []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		allowed[strings.ToLower(e)] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, _ := AdminFromContext(r.Context())
			if _, ok := allowed[strings.ToLower(email)]; !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
