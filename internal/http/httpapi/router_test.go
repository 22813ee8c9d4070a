package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"studio/internal/generation"
	"studio/internal/http/handlers"
	"studio/internal/infra"
	"studio/internal/schedule"
	"studio/internal/store"
)

type routerGenerator struct{ snap generation.Snapshot }

func (routerGenerator) Generate() error { return nil }
func (routerGenerator) GenerateVisuals(int) error { return nil }
func (g routerGenerator) Snapshot() generation.Snapshot { return g.snap }

type routerScheduler struct{}

func (routerScheduler) Load(context.Context) error { return nil }
func (routerScheduler) LoadLogs(context.Context, int) {}
func (routerScheduler) Toggle(context.Context) error { return nil }
func (routerScheduler) RunNow(context.Context) error { return nil }
func (routerScheduler) Snapshot() schedule.Snapshot { return schedule.Snapshot{} }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	kv, err := store.OpenKV(filepath.Join(t.TempDir(), "studio.db"))
	if err != nil {
		t.Fatalf("OpenKV: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	logger := infra.Logger(zerolog.New(io.Discard))
	app := &handlers.App{
		Logger:    logger,
		Settings:  store.NewSettingsStore(kv, logger),
		History:   store.NewHistoryStore(kv, logger),
		Generator: routerGenerator{},
		Schedule:  routerScheduler{},
	}
	cfg := &infra.Config{
		AllowedOrigins:  "*",
		RateLimitPerMin: 1000,
		HTTPReadTimeout: 15 * time.Second,
	}
	return NewRouter(app, cfg)
}

func TestRouterDispatch(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/v1/healthz", 200},
		{"GET", "/v1/settings", 200},
		{"POST", "/v1/generate", 202},
		{"GET", "/v1/generation", 200},
		{"POST", "/v1/videos/0/visuals", 202},
		{"GET", "/v1/visuals", 200},
		{"GET", "/v1/history", 200},
		{"DELETE", "/v1/history/hist_x", 204},
		{"GET", "/v1/schedule", 200},
		{"GET", "/v1/schedule/logs", 200},
		{"POST", "/v1/schedule/toggle", 200},
		{"POST", "/v1/schedule/run", 200},
		{"GET", "/v1/export", 404},
		{"GET", "/v1/nope", 404},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Errorf("%s %s = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestRouterAssignsRequestID(t *testing.T) {
	router := newTestRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/healthz", nil))
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID not set")
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest("OPTIONS", "/v1/generate", nil)
	req.Header.Set("Origin", "https://studio.example")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("allow origin = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}
