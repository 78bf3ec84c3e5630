package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		wantStatus  int
		wantState   string
		wantMessage string
	}{
		{"database reachable", nil, http.StatusOK, "ok", "Portfolio API"},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, "unhealthy", "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(&mockDB{pingFunc: func(ctx context.Context) error { return tt.pingErr }})
			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest("GET", "/api/health", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %q", ct)
			}
			var resp healthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.wantState || resp.Message != tt.wantMessage {
				t.Errorf("expected {%s %s}, got %+v", tt.wantState, tt.wantMessage, resp)
			}
		})
	}
}
