package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/abdhesh369/portfolio-backend/internal/logging"
)

// Options configures a Limiter.
type Options struct {
	Max int

	// Message is returned as {"message": Message} with 429.
	Message string

	// TrustedProxyCount is the number of reverse proxies in front of the
	// server that append to X-Forwarded-For. Zero ignores the header.
	TrustedProxyCount int

	// OnLimited, if set, is called for every rejected request.
	OnLimited func(r *http.Request, key string)
}

// Limiter is HTTP middleware enforcing Options against a Store.
type Limiter struct {
	store Store
	opts  Options
}

// New creates a Limiter.
func New(store Store, opts Options) *Limiter {
	if opts.Message == "" {
		opts.Message = "Too many requests, please try again later."
	}
	return &Limiter{store: store, opts: opts}
}

// Middleware returns an http.Handler that enforces the limit per client address.
// A store failure lets the request through.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.ClientIP(r)
		logger := logging.FromContext(r.Context())

		count, resetAt, err := l.store.Hit(r.Context(), key)
		if err != nil {
			logger.Warn("rate limit store unavailable, allowing request", "error", err, "client", key)
			next.ServeHTTP(w, r)
			return
		}

		resetIn := time.Until(resetAt)
		remaining := l.opts.Max - count
		if remaining < 0 {
			remaining = 0
		}
		h := w.Header()
		h.Set("RateLimit-Limit", strconv.Itoa(l.opts.Max))
		h.Set("RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("RateLimit-Reset", seconds(resetIn))

		if count > l.opts.Max {
			logger.Warn("rate limit exceeded", "client", key, "count", count, "path", r.URL.Path)
			if l.opts.OnLimited != nil {
				l.opts.OnLimited(r, key)
			}
			h.Set("Retry-After", seconds(resetIn))
			h.Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			if err := json.NewEncoder(w).Encode(map[string]string{"message": l.opts.Message}); err != nil {
				logger.Error("rate limit response write failed", "error", err)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

func seconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// ClientIP extracts the client address, reading X-Forwarded-For from the
// rightmost trusted proxy position so clients cannot spoof it.
func (l *Limiter) ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && l.opts.TrustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - l.opts.TrustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
