package handlers

import (
	"encoding/json"
	"net/http"

	"studio/internal/domain"
)

type settingsResponse struct {
	Settings           domain.Settings `json:"settings"`
	AvailablePillars   []string        `json:"availablePillars"`
	AvailablePlatforms []string        `json:"availablePlatforms"`
}

func (a *App) GetSettings(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, settingsResponse{
		Settings:           a.Settings.Current(),
		AvailablePillars:   domain.AllPillars,
		AvailablePlatforms: domain.AllPlatforms,
	})
}

// UpdateSettings replaces the whole product profile. The profile is free-form
// by design; an empty product name is stored as-is and simply keeps
// generation disabled.
func (a *App) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if settings.KeyFeatures == nil {
		settings.KeyFeatures = []string{}
	}
	if settings.ContentPillars == nil {
		settings.ContentPillars = []string{}
	}
	if settings.PlatformTargets == nil {
		settings.PlatformTargets = []string{}
	}
	a.Settings.Save(settings)
	a.json(w, http.StatusOK, settingsResponse{
		Settings:           settings,
		AvailablePillars:   domain.AllPillars,
		AvailablePlatforms: domain.AllPlatforms,
	})
}
