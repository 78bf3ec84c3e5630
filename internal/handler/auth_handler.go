package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/abdhesh369/portfolio-backend/internal/logging"
	"github.com/abdhesh369/portfolio-backend/pkg/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const oauthStateCookieName = "oauth_state"

// generateOAuthState returns a random CSRF state for the OAuth round trip.
func generateOAuthState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

func (h *AuthHandler) setStateCookie(w http.ResponseWriter, state string) {
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600, // 10 minutes
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
	})
}

// verifyOAuthState compares the state cookie with the state query parameter.
func verifyOAuthState(r *http.Request) bool {
	cookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return cookie.Value == r.URL.Query().Get("state")
}

func clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}

// AuthConfig configures AuthHandler.
type AuthConfig struct {
	// AdminEmails lists every admin. The first entry is the one allowed to
	// sign in with AdminPasswordHash; all of them may sign in through GitHub.
	AdminEmails       []string
	AdminPasswordHash string
	SessionSecret     string
	FrontendURL       string
	BackendURL        string
	Secure            bool // mark cookies Secure (production)

	GitHubClientID     string
	GitHubClientSecret string
	// Overridable for tests; default to github.com.
	GitHubEndpoint oauth2.Endpoint
	GitHubAPIBase  string
}

// AuthHandler signs the site owner in and out.
type AuthHandler struct {
	adminEmails   []string
	passwordHash  string
	sessionSecret []byte
	frontendURL   string
	secure        bool

	githubConfig  *oauth2.Config // nil when GitHub sign-in is not configured
	githubAPIBase string
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(cfg AuthConfig) *AuthHandler {
	h := &AuthHandler{
		adminEmails:   cfg.AdminEmails,
		passwordHash:  cfg.AdminPasswordHash,
		sessionSecret: auth.SessionSecretBytes(cfg.SessionSecret),
		frontendURL:   strings.TrimSuffix(cfg.FrontendURL, "/"),
		secure:        cfg.Secure,
		githubAPIBase: cfg.GitHubAPIBase,
	}
	if h.githubAPIBase == "" {
		h.githubAPIBase = "https://api.github.com"
	}
	if cfg.GitHubClientID != "" && cfg.GitHubClientSecret != "" {
		endpoint := cfg.GitHubEndpoint
		if endpoint.TokenURL == "" {
			endpoint = github.Endpoint
		}
		h.githubConfig = &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  strings.TrimSuffix(cfg.BackendURL, "/") + "/api/auth/github/callback",
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     endpoint,
		}
	}
	return h
}

// startSession issues a token for email and stores it in the session cookie.
func (h *AuthHandler) startSession(w http.ResponseWriter, email string) (string, time.Time, error) {
	token, expires, err := auth.IssueToken(email, h.sessionSecret, auth.SessionTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL.Seconds()),
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
	})
	return token, expires, nil
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	var primary string
	if len(h.adminEmails) > 0 {
		primary = h.adminEmails[0]
	}
	if !auth.CheckCredentials(primary, h.passwordHash, req.Email, req.Password) {
		logging.FromContext(r.Context()).Warn("admin login rejected", "remote_addr", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	token, expires, err := h.startSession(w, primary)
	if err != nil {
		writeInternal(w, r, "session_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "expires_at": expires.UTC()})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
		Expires:  time.Unix(0, 0),
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me handles GET /api/auth/me (admin).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.AdminFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

// GitHubLoginURL handles GET /api/auth/github/login and returns the authorize URL.
func (h *AuthHandler) GitHubLoginURL(w http.ResponseWriter, r *http.Request) {
	if h.githubConfig == nil {
		writeError(w, http.StatusNotFound, "github_login_disabled")
		return
	}
	state := generateOAuthState()
	h.setStateCookie(w, state)
	writeJSON(w, http.StatusOK, map[string]string{"url": h.githubConfig.AuthCodeURL(state)})
}

// GitHubCallback handles GET /api/auth/github/callback. Only accounts whose
// verified email is an admin email get a session.
func (h *AuthHandler) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	fail := func(code string) {
		http.Redirect(w, r, h.frontendURL+"/admin/login?error="+code, http.StatusFound)
	}
	if h.githubConfig == nil {
		fail("github_login_disabled")
		return
	}
	if !verifyOAuthState(r) {
		clearStateCookie(w)
		fail("invalid_state")
		return
	}
	clearStateCookie(w)

	code := r.URL.Query().Get("code")
	if code == "" {
		fail("no_code")
		return
	}

	token, err := h.githubConfig.Exchange(r.Context(), code)
	if err != nil {
		logging.FromContext(r.Context()).Warn("github code exchange failed", "error", err)
		fail("exchange_failed")
		return
	}

	client := h.githubConfig.Client(r.Context(), token)
	emails, err := h.githubVerifiedEmails(r.Context(), client)
	if err != nil {
		logging.FromContext(r.Context()).Warn("github email lookup failed", "error", err)
		fail("userinfo_failed")
		return
	}

	email, ok := h.matchAdmin(emails)
	if !ok {
		logging.FromContext(r.Context()).Warn("github login for non-admin account rejected")
		fail("not_admin")
		return
	}

	if _, _, err := h.startSession(w, email); err != nil {
		logging.FromContext(r.Context()).Error("session issue failed", "error", err)
		fail("session_failed")
		return
	}
	http.Redirect(w, r, h.frontendURL+"/admin", http.StatusFound)
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// githubVerifiedEmails lists the account's verified addresses, primary first.
func (h *AuthHandler) githubVerifiedEmails(ctx context.Context, client *http.Client) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.githubAPIBase+"/user/emails", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github /user/emails: status %d", resp.StatusCode)
	}

	var list []githubEmail
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}
	var out []string
	for _, e := range list {
		if !e.Verified {
			continue
		}
		if e.Primary {
			out = append([]string{e.Email}, out...)
		} else {
			out = append(out, e.Email)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("github account has no verified email")
	}
	return out, nil
}

func (h *AuthHandler) matchAdmin(emails []string) (string, bool) {
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if slices.Contains(h.adminEmails, e) {
			return e, true
		}
	}
	return "", false
}
