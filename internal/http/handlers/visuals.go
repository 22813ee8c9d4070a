package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studio/internal/domain"
	"studio/internal/generation"

	"github.com/go-chi/chi/v5"
)

type visualsResponse struct {
	Busy      bool                  `json:"busy"`
	Package   *domain.VisualPackage `json:"package"`
	AssetURLs []string              `json:"asset_urls"`
}

// GenerateVisuals kicks off the visual-agent flow for one generated video.
func (a *App) GenerateVisuals(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "index must be a non-negative integer")
		return
	}
	switch err := a.Generator.GenerateVisuals(index); {
	case errors.Is(err, generation.ErrNoSuchVideo):
		a.error(w, http.StatusNotFound, "not_found", "no such video")
	case err != nil:
		a.error(w, http.StatusInternalServerError, "internal", "failed to start visual generation")
	default:
		a.json(w, http.StatusAccepted, map[string]string{"status": "started"})
	}
}

func (a *App) GetVisuals(w http.ResponseWriter, r *http.Request) {
	snap := a.Generator.Snapshot()
	a.json(w, http.StatusOK, visualsResponse{
		Busy:      snap.VisualBusy,
		Package:   snap.Visual,
		AssetURLs: snap.VisualAssets,
	})
}
