package schedule

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"studio/internal/domain"
	"studio/internal/infra"
	"studio/internal/providers/scheduler"
)

type stubAPI struct {
	schedule    *domain.Schedule
	scheduleErr error
	logs        []domain.ExecutionLogEntry
	logsErr     error
	pauseErr    error
	resumeErr   error
	triggerErr  error

	gets, pauses, resumes, triggers, logCalls int
	lastLimit                                 int
}

func (s *stubAPI) GetSchedule(context.Context, string) (*domain.Schedule, error) {
	s.gets++
	if s.scheduleErr != nil {
		return nil, s.scheduleErr
	}
	return s.schedule, nil
}

func (s *stubAPI) PauseSchedule(context.Context, string) error {
	s.pauses++
	return s.pauseErr
}

func (s *stubAPI) ResumeSchedule(context.Context, string) error {
	s.resumes++
	return s.resumeErr
}

func (s *stubAPI) TriggerNow(context.Context, string) error {
	s.triggers++
	return s.triggerErr
}

func (s *stubAPI) GetLogs(_ context.Context, _ string, limit int) ([]domain.ExecutionLogEntry, error) {
	s.logCalls++
	s.lastLimit = limit
	if s.logsErr != nil {
		return nil, s.logsErr
	}
	return s.logs, nil
}

func newTestController(api API) *Controller {
	return New(Options{
		Client:     api,
		ScheduleID: "sched-1",
		Logger:     infra.Logger(zerolog.New(io.Discard)),
	})
}

func TestLoadSuccess(t *testing.T) {
	api := &stubAPI{schedule: &domain.Schedule{IsActive: true, CronExpression: "0 8 * * *"}}
	c := newTestController(api)

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	snap := c.Snapshot()
	if snap.Schedule == nil || !snap.Schedule.IsActive {
		t.Fatalf("schedule not mirrored: %+v", snap.Schedule)
	}
	if snap.ErrorMessage != "" || snap.Loading {
		t.Fatalf("unexpected state: %+v", snap)
	}
}

func TestLoadFailureKeepsLastSchedule(t *testing.T) {
	api := &stubAPI{schedule: &domain.Schedule{IsActive: true}}
	c := newTestController(api)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	api.scheduleErr = errors.New("dial tcp: connection refused")
	if err := c.Load(context.Background()); err == nil {
		t.Fatal("Load should surface the failure")
	}
	snap := c.Snapshot()
	if snap.Schedule == nil {
		t.Fatal("last known schedule dropped on failed refresh")
	}
	if snap.ErrorMessage != "Failed to load schedule" {
		t.Fatalf("error message = %q", snap.ErrorMessage)
	}
}

func TestLoadPrefersServiceErrorWording(t *testing.T) {
	api := &stubAPI{scheduleErr: &scheduler.ServiceError{Op: "scheduler: get schedule", Message: "schedule is archived"}}
	c := newTestController(api)

	if err := c.Load(context.Background()); err == nil {
		t.Fatal("Load should surface the failure")
	}
	if got := c.Snapshot().ErrorMessage; got != "schedule is archived" {
		t.Fatalf("error message = %q, want service wording", got)
	}
}

func TestToggleRequiresLoadedSchedule(t *testing.T) {
	c := newTestController(&stubAPI{})
	if err := c.Toggle(context.Background()); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Toggle = %v, want ErrNotLoaded", err)
	}
}

func TestTogglePausesActiveAndReloads(t *testing.T) {
	api := &stubAPI{schedule: &domain.Schedule{IsActive: true}}
	c := newTestController(api)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	api.schedule = &domain.Schedule{IsActive: false}
	if err := c.Toggle(context.Background()); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if api.pauses != 1 || api.resumes != 0 {
		t.Fatalf("pauses=%d resumes=%d, want pause only", api.pauses, api.resumes)
	}
	if api.gets != 2 {
		t.Fatalf("gets=%d, want a fresh read after the mutation", api.gets)
	}
	snap := c.Snapshot()
	if snap.Schedule.IsActive {
		t.Fatal("mirror still active; state must come from the re-read")
	}
	if snap.ActionInFlight {
		t.Fatal("action flag not released")
	}
}

func TestToggleResumesPaused(t *testing.T) {
	api := &stubAPI{schedule: &domain.Schedule{IsActive: false}}
	c := newTestController(api)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := c.Toggle(context.Background()); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if api.resumes != 1 || api.pauses != 0 {
		t.Fatalf("resumes=%d pauses=%d, want resume only", api.resumes, api.pauses)
	}
}

func TestToggleFailureSkipsReload(t *testing.T) {
	api := &stubAPI{schedule: &domain.Schedule{IsActive: true}, pauseErr: errors.New("boom")}
	c := newTestController(api)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := c.Toggle(context.Background()); err == nil {
		t.Fatal("Toggle should surface the failure")
	}
	if api.gets != 1 {
		t.Fatalf("gets=%d, failed mutation must not trigger a re-read", api.gets)
	}
	if got := c.Snapshot().ErrorMessage; got != "Failed to update schedule" {
		t.Fatalf("error message = %q", got)
	}
}

func TestRunNowRefreshesLogsOnly(t *testing.T) {
	api := &stubAPI{
		schedule: &domain.Schedule{IsActive: true},
		logs:     []domain.ExecutionLogEntry{{ID: "ex-1", Success: true}},
	}
	c := newTestController(api)

	if err := c.RunNow(context.Background()); err != nil {
		t.Fatalf("RunNow: %v", err)
	}
	if api.triggers != 1 {
		t.Fatalf("triggers = %d, want 1", api.triggers)
	}
	if api.gets != 0 {
		t.Fatalf("gets = %d, manual run must not re-read the schedule", api.gets)
	}
	if api.logCalls != 1 || api.lastLimit != DefaultLogLimit {
		t.Fatalf("logCalls=%d limit=%d", api.logCalls, api.lastLimit)
	}
	snap := c.Snapshot()
	if len(snap.Logs) != 1 || snap.Logs[0].ID != "ex-1" {
		t.Fatalf("logs = %+v", snap.Logs)
	}
}

func TestRunNowFailure(t *testing.T) {
	api := &stubAPI{triggerErr: errors.New("boom")}
	c := newTestController(api)

	if err := c.RunNow(context.Background()); err == nil {
		t.Fatal("RunNow should surface the failure")
	}
	if api.logCalls != 0 {
		t.Fatal("failed trigger must not refresh logs")
	}
	if got := c.Snapshot().ErrorMessage; got != "Failed to trigger run" {
		t.Fatalf("error message = %q", got)
	}
}

func TestLoadLogsFailureIsSwallowed(t *testing.T) {
	api := &stubAPI{logsErr: errors.New("boom")}
	c := newTestController(api)

	c.LoadLogs(context.Background(), 0)
	if got := c.Snapshot().ErrorMessage; got != "" {
		t.Fatalf("log failure surfaced an error: %q", got)
	}
	if got := c.Snapshot().Logs; len(got) != 0 {
		t.Fatalf("logs = %+v, want empty", got)
	}
}
