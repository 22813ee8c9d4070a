package handlers

import (
	"net/http"

	"studio/internal/domain"

	"github.com/go-chi/chi/v5"
)

// GetHistory lists past generations, newest first. ?sample=true returns the
// built-in preview dataset without reading the store.
func (a *App) GetHistory(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("sample") == "true" {
		a.json(w, http.StatusOK, map[string]any{"history": domain.SampleHistory()})
		return
	}
	a.json(w, http.StatusOK, map[string]any{"history": a.History.List()})
}

// DeleteHistory removes one entry. Deleting an unknown id is a no-op; the
// response is 204 either way.
func (a *App) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	a.History.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
