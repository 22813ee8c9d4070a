package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"studio/internal/generation"
	"studio/internal/infra"
	"studio/internal/schedule"
	"studio/internal/store"
)

// Generator is the slice of the generation orchestrator the handlers call.
type Generator interface {
	Generate() error
	GenerateVisuals(videoIndex int) error
	Snapshot() generation.Snapshot
}

// Scheduler is the slice of the schedule controller the handlers call.
type Scheduler interface {
	Load(ctx context.Context) error
	LoadLogs(ctx context.Context, limit int)
	Toggle(ctx context.Context) error
	RunNow(ctx context.Context) error
	Snapshot() schedule.Snapshot
}

// App carries the wired dependencies for every handler.
type App struct {
	Logger    infra.Logger
	Settings  *store.SettingsStore
	History   *store.HistoryStore
	Generator Generator
	Schedule  Scheduler
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": kind, "message": message},
	})
}
