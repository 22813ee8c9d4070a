package domain

import "time"

// Schedule mirrors the external scheduler resource. It is read-only from this
// layer except for the pause/resume/trigger verbs.
type Schedule struct {
	IsActive       bool       `json:"is_active"`
	CronExpression string     `json:"cron_expression"`
	Timezone       string     `json:"timezone"`
	NextRunTime    *time.Time `json:"next_run_time"`
	LastRunAt      *time.Time `json:"last_run_at"`
	LastRunSuccess *bool      `json:"last_run_success"`
}

// ExecutionLogEntry is one past invocation of the schedule, newest first as
// returned by the scheduler service.
type ExecutionLogEntry struct {
	ID             string    `json:"id"`
	ExecutedAt     time.Time `json:"executed_at"`
	Success        bool      `json:"success"`
	Attempt        int       `json:"attempt"`
	MaxAttempts    int       `json:"max_attempts"`
	ResponseStatus string    `json:"response_status"`
	ErrorMessage   string    `json:"error_message,omitempty"`
}
