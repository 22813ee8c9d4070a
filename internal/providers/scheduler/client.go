// Package scheduler talks to the external scheduler service that owns the
// recurring generation trigger. The service is keyed by a single fixed
// schedule identifier; this layer only reads it, flips it between active and
// paused, forces out-of-band runs, and fetches its execution log.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"studio/internal/domain"
	"studio/internal/infra"
)

// Options controls how the scheduler client is configured.
type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client issues scheduler service calls over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *infra.Logger
}

type scheduleEnvelope struct {
	Success  bool             `json:"success"`
	Schedule *domain.Schedule `json:"schedule"`
	Error    string           `json:"error"`
}

type logsEnvelope struct {
	Success    bool                       `json:"success"`
	Executions []domain.ExecutionLogEntry `json:"executions"`
	Error      string                     `json:"error"`
}

type actionEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewClient constructs a scheduler client with nil-safe defaults.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("scheduler: base URL is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// GetSchedule reads the schedule resource.
func (c *Client) GetSchedule(ctx context.Context, id string) (*domain.Schedule, error) {
	var env scheduleEnvelope
	if err := c.call(ctx, http.MethodGet, c.schedulePath(id, ""), &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Schedule == nil {
		return nil, serviceErr("scheduler: get schedule", env.Error)
	}
	return env.Schedule, nil
}

// PauseSchedule deactivates the schedule.
func (c *Client) PauseSchedule(ctx context.Context, id string) error {
	return c.action(ctx, id, "pause")
}

// ResumeSchedule reactivates the schedule.
func (c *Client) ResumeSchedule(ctx context.Context, id string) error {
	return c.action(ctx, id, "resume")
}

// TriggerNow forces an out-of-band execution. Delivery is at-least-once; the
// service may run the job before this call returns.
func (c *Client) TriggerNow(ctx context.Context, id string) error {
	return c.action(ctx, id, "trigger")
}

// GetLogs fetches up to limit execution-log entries, newest first.
func (c *Client) GetLogs(ctx context.Context, id string, limit int) ([]domain.ExecutionLogEntry, error) {
	path := c.schedulePath(id, "logs")
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var env logsEnvelope
	if err := c.call(ctx, http.MethodGet, path, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, serviceErr("scheduler: get logs", env.Error)
	}
	if env.Executions == nil {
		return []domain.ExecutionLogEntry{}, nil
	}
	return env.Executions, nil
}

func (c *Client) action(ctx context.Context, id, verb string) error {
	var env actionEnvelope
	if err := c.call(ctx, http.MethodPost, c.schedulePath(id, verb), &env); err != nil {
		return err
	}
	if !env.Success {
		return serviceErr("scheduler: "+verb, env.Error)
	}
	c.logger.Debug().Str("schedule_id", id).Str("verb", verb).Msg("scheduler: action accepted")
	return nil
}

func (c *Client) schedulePath(id, suffix string) string {
	path := fmt.Sprintf("%s/schedules/%s", c.baseURL, url.PathEscape(id))
	if suffix != "" {
		path += "/" + suffix
	}
	return path
}

func (c *Client) call(ctx context.Context, method, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("scheduler: create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scheduler: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return fmt.Errorf("scheduler: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("scheduler: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("scheduler: decode response: %w", err)
	}
	return nil
}

// ServiceError is a failure the scheduler service reported in its response
// envelope, as opposed to a transport or decoding failure. Message carries
// the service's own wording and may be empty.
type ServiceError struct {
	Op      string
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Op + ": " + e.Message
	}
	return e.Op + ": service reported failure"
}

func serviceErr(op, msg string) error {
	return &ServiceError{Op: op, Message: msg}
}
