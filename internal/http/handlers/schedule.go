package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studio/internal/domain"
	"studio/internal/providers/scheduler"
	"studio/internal/schedule"
)

type scheduleResponse struct {
	Schedule        *domain.Schedule `json:"schedule"`
	CronDescription string           `json:"cron_description,omitempty"`
	Error           string           `json:"error,omitempty"`
}

type scheduleLogsResponse struct {
	Logs []domain.ExecutionLogEntry `json:"logs"`
}

func (a *App) scheduleJSON(w http.ResponseWriter) {
	snap := a.Schedule.Snapshot()
	resp := scheduleResponse{Schedule: snap.Schedule, Error: snap.ErrorMessage}
	if snap.Schedule != nil {
		resp.CronDescription = scheduler.CronToHuman(snap.Schedule.CronExpression)
	}
	a.json(w, http.StatusOK, resp)
}

// GetSchedule re-reads the remote schedule and returns the mirror. A failed
// refresh still answers 200 with the last known schedule and an error string,
// matching how the rest of the state surface reports failures.
func (a *App) GetSchedule(w http.ResponseWriter, r *http.Request) {
	_ = a.Schedule.Load(r.Context())
	a.scheduleJSON(w)
}

func (a *App) GetScheduleLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be a positive integer")
			return
		}
		limit = n
	}
	a.Schedule.LoadLogs(r.Context(), limit)
	a.json(w, http.StatusOK, scheduleLogsResponse{Logs: a.Schedule.Snapshot().Logs})
}

// ToggleSchedule pauses or resumes the schedule depending on its last loaded
// state, then returns the freshly re-read mirror.
func (a *App) ToggleSchedule(w http.ResponseWriter, r *http.Request) {
	switch err := a.Schedule.Toggle(r.Context()); {
	case errors.Is(err, schedule.ErrActionInFlight):
		a.error(w, http.StatusConflict, "conflict", "schedule action already in flight")
	case errors.Is(err, schedule.ErrNotLoaded):
		a.error(w, http.StatusConflict, "conflict", "schedule not loaded yet")
	default:
		// Remote failures surface in the mirror's error string.
		a.scheduleJSON(w)
	}
}

// RunSchedule triggers an out-of-band execution and returns the refreshed
// execution log.
func (a *App) RunSchedule(w http.ResponseWriter, r *http.Request) {
	if err := a.Schedule.RunNow(r.Context()); errors.Is(err, schedule.ErrActionInFlight) {
		a.error(w, http.StatusConflict, "conflict", "schedule action already in flight")
		return
	}
	snap := a.Schedule.Snapshot()
	a.json(w, http.StatusOK, map[string]any{"logs": snap.Logs, "error": snap.ErrorMessage})
}
