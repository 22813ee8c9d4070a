package handlers

import (
	"errors"
	"net/http"

	"studio/internal/domain"
	"studio/internal/generation"
)

type generationResponse struct {
	Phase       string                   `json:"phase"`
	Busy        bool                     `json:"busy"`
	ActiveAgent string                   `json:"active_agent,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Result      *domain.GenerationResult `json:"result"`
}

// Generate kicks off a content-package generation in the background.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	switch err := a.Generator.Generate(); {
	case errors.Is(err, generation.ErrBusy):
		a.error(w, http.StatusConflict, "conflict", "generation already in flight")
	case errors.Is(err, generation.ErrNoProductName):
		a.error(w, http.StatusUnprocessableEntity, "unprocessable", "product name is required")
	case err != nil:
		a.error(w, http.StatusInternalServerError, "internal", "failed to start generation")
	default:
		a.json(w, http.StatusAccepted, map[string]string{"status": "started"})
	}
}

// GetGeneration reports the current generation state. With ?sample=true it
// returns the built-in preview dataset instead, leaving live state untouched.
func (a *App) GetGeneration(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("sample") == "true" {
		a.json(w, http.StatusOK, generationResponse{
			Phase: generation.PhaseComplete,
			Result: &domain.GenerationResult{
				ResearchSummary: domain.SampleResearch(),
				Videos:          domain.SampleVideos(),
			},
		})
		return
	}
	snap := a.Generator.Snapshot()
	a.json(w, http.StatusOK, generationResponse{
		Phase:       snap.Phase,
		Busy:        snap.Busy,
		ActiveAgent: snap.ActiveAgentID,
		Error:       snap.ErrorMessage,
		Result:      snap.Result,
	})
}
