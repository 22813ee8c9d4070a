package httpapi

import (
	"net/http"
	"strings"
	"time"

	"studio/internal/http/handlers"
	"studio/internal/infra"
	"studio/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every route behind the shared middleware chain.
func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(strings.Split(cfg.AllowedOrigins, ",")),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/settings", func(r chi.Router) {
		r.Get("/", app.GetSettings)
		r.Put("/", app.UpdateSettings)
	})

	r.Post("/v1/generate", app.Generate)
	r.Get("/v1/generation", app.GetGeneration)
	r.Post("/v1/videos/{index}/visuals", app.GenerateVisuals)
	r.Get("/v1/visuals", app.GetVisuals)
	r.Get("/v1/export", app.Export)

	r.Route("/v1/history", func(r chi.Router) {
		r.Get("/", app.GetHistory)
		r.Delete("/{id}", app.DeleteHistory)
	})

	r.Route("/v1/schedule", func(r chi.Router) {
		r.Get("/", app.GetSchedule)
		r.Get("/logs", app.GetScheduleLogs)
		r.Post("/toggle", app.ToggleSchedule)
		r.Post("/run", app.RunSchedule)
	})

	return r
}
