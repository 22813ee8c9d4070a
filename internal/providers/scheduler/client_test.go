package scheduler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetScheduleDecodesResource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schedules/sched-1" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"schedule": {
				"is_active": true,
				"cron_expression": "0 8 * * *",
				"timezone": "America/New_York",
				"next_run_time": "2026-03-01T13:00:00Z",
				"last_run_at": "2026-02-28T13:00:00Z",
				"last_run_success": true
			}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	sched, err := client.GetSchedule(context.Background(), "sched-1")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if !sched.IsActive || sched.CronExpression != "0 8 * * *" {
		t.Fatalf("schedule mangled: %+v", sched)
	}
	if sched.NextRunTime == nil || sched.LastRunSuccess == nil || !*sched.LastRunSuccess {
		t.Fatalf("nullable fields mangled: %+v", sched)
	}
}

func TestGetScheduleSurfacesServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "schedule not found"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Options{BaseURL: server.URL})
	_, err := client.GetSchedule(context.Background(), "missing")
	if err == nil || !strings.Contains(err.Error(), "schedule not found") {
		t.Fatalf("want service-supplied error, got %v", err)
	}
}

func TestActionVerbsHitExpectedEndpoints(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %q, want POST", r.Method)
		}
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client, _ := NewClient(Options{BaseURL: server.URL})
	ctx := context.Background()
	if err := client.PauseSchedule(ctx, "s"); err != nil {
		t.Fatalf("PauseSchedule: %v", err)
	}
	if err := client.ResumeSchedule(ctx, "s"); err != nil {
		t.Fatalf("ResumeSchedule: %v", err)
	}
	if err := client.TriggerNow(ctx, "s"); err != nil {
		t.Fatalf("TriggerNow: %v", err)
	}

	want := []string{"/schedules/s/pause", "/schedules/s/resume", "/schedules/s/trigger"}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("paths[%d] = %q, want %q", i, paths[i], p)
		}
	}
}

func TestGetLogsPassesLimitAndToleratesMissingList(t *testing.T) {
	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client, _ := NewClient(Options{BaseURL: server.URL})
	logs, err := client.GetLogs(context.Background(), "s", 20)
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if gotLimit != "20" {
		t.Fatalf("limit = %q, want 20", gotLimit)
	}
	if logs == nil || len(logs) != 0 {
		t.Fatalf("logs = %v, want empty slice", logs)
	}
}
