// Package schedule mirrors the remote scheduler's state locally. The remote
// service is the single source of truth: every local view of the schedule
// comes from a fresh read, never from optimistic updates after a mutation.
package schedule

import (
	"context"
	"errors"
	"sync"

	"studio/internal/domain"
	"studio/internal/infra"
	"studio/internal/providers/scheduler"
)

// DefaultLogLimit is how many execution-log entries are kept in view.
const DefaultLogLimit = 10

// User-facing fallback messages, used when the service did not supply its
// own wording.
const (
	msgLoadFailed    = "Failed to load schedule"
	msgUpdateFailed  = "Failed to update schedule"
	msgTriggerFailed = "Failed to trigger run"
)

var (
	// ErrActionInFlight reports that a mutating call is already running.
	ErrActionInFlight = errors.New("schedule action already in flight")
	// ErrNotLoaded reports a toggle before any successful schedule read.
	ErrNotLoaded = errors.New("schedule not loaded")
)

// API is the slice of the scheduler client the controller needs.
type API interface {
	GetSchedule(ctx context.Context, id string) (*domain.Schedule, error)
	PauseSchedule(ctx context.Context, id string) error
	ResumeSchedule(ctx context.Context, id string) error
	TriggerNow(ctx context.Context, id string) error
	GetLogs(ctx context.Context, id string, limit int) ([]domain.ExecutionLogEntry, error)
}

// Options configures a Controller.
type Options struct {
	Client     API
	ScheduleID string
	Logger     infra.Logger
	LogLimit   int
}

// Controller owns the local mirror of the remote schedule and serializes
// mutating calls against it.
type Controller struct {
	client     API
	scheduleID string
	logger     infra.Logger
	logLimit   int

	mu       sync.Mutex
	schedule *domain.Schedule
	logs     []domain.ExecutionLogEntry
	errMsg   string
	loading  bool
	acting   bool
}

// Snapshot is a point-in-time copy of the controller's visible state.
type Snapshot struct {
	Schedule       *domain.Schedule
	Logs           []domain.ExecutionLogEntry
	ErrorMessage   string
	Loading        bool
	ActionInFlight bool
}

// New constructs a Controller.
func New(opts Options) *Controller {
	limit := opts.LogLimit
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	return &Controller{
		client:     opts.Client,
		scheduleID: opts.ScheduleID,
		logger:     opts.Logger,
		logLimit:   limit,
		logs:       []domain.ExecutionLogEntry{},
	}
}

// Snapshot returns the current visible state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Schedule:       c.schedule,
		Logs:           c.logs,
		ErrorMessage:   c.errMsg,
		Loading:        c.loading,
		ActionInFlight: c.acting,
	}
}

// Load refreshes the schedule mirror from the remote service. A failed read
// keeps the last known schedule and surfaces an error message instead.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	sched, err := c.client.GetSchedule(ctx, c.scheduleID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = failureMessage(err, msgLoadFailed)
		c.logger.Error().Err(err).Msg("schedule: load failed")
		return err
	}
	c.schedule = sched
	c.errMsg = ""
	return nil
}

// LoadLogs refreshes the execution log, fetching up to limit entries or the
// configured default when limit is not positive. Failures are swallowed after
// logging; the log pane is best-effort and never blocks the schedule view.
func (c *Controller) LoadLogs(ctx context.Context, limit int) {
	if limit <= 0 {
		limit = c.logLimit
	}
	logs, err := c.client.GetLogs(ctx, c.scheduleID, limit)
	if err != nil {
		c.logger.Warn().Err(err).Msg("schedule: log fetch failed")
		return
	}
	c.mu.Lock()
	c.logs = logs
	c.mu.Unlock()
}

// Toggle pauses an active schedule or resumes a paused one, then re-reads the
// remote state. The local mirror is never flipped optimistically.
func (c *Controller) Toggle(ctx context.Context) error {
	c.mu.Lock()
	if c.acting {
		c.mu.Unlock()
		return ErrActionInFlight
	}
	if c.schedule == nil {
		c.mu.Unlock()
		return ErrNotLoaded
	}
	active := c.schedule.IsActive
	c.acting = true
	c.mu.Unlock()
	defer c.release()

	var err error
	if active {
		err = c.client.PauseSchedule(ctx, c.scheduleID)
	} else {
		err = c.client.ResumeSchedule(ctx, c.scheduleID)
	}
	if err != nil {
		c.setError(failureMessage(err, msgUpdateFailed))
		c.logger.Error().Err(err).Bool("was_active", active).Msg("schedule: toggle failed")
		return err
	}
	return c.Load(ctx)
}

// RunNow forces an out-of-band execution, then refreshes only the execution
// log; the schedule resource itself is unchanged by a manual run.
func (c *Controller) RunNow(ctx context.Context) error {
	c.mu.Lock()
	if c.acting {
		c.mu.Unlock()
		return ErrActionInFlight
	}
	c.acting = true
	c.mu.Unlock()
	defer c.release()

	if err := c.client.TriggerNow(ctx, c.scheduleID); err != nil {
		c.setError(failureMessage(err, msgTriggerFailed))
		c.logger.Error().Err(err).Msg("schedule: manual trigger failed")
		return err
	}
	c.logger.Info().Str("schedule_id", c.scheduleID).Msg("schedule: manual run triggered")
	c.LoadLogs(ctx, 0)
	return nil
}

func (c *Controller) release() {
	c.mu.Lock()
	c.acting = false
	c.mu.Unlock()
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
}

// failureMessage prefers the service's own error wording when it sent one.
func failureMessage(err error, fallback string) string {
	var se *scheduler.ServiceError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
