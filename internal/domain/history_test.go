package domain

import (
	"strings"
	"testing"
)

func TestNewHistoryIDShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := NewHistoryID()
		if !strings.HasPrefix(id, "hist_") {
			t.Fatalf("id %q lacks hist_ prefix", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id after %d generations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewHistoryEntryStampsResult(t *testing.T) {
	result := GenerationResult{
		Videos:               []VideoScript{{VideoNumber: 1, Title: "T"}},
		ResearchSummary:      &ResearchSummary{DataSourcesCount: 3},
		ContentStrategyNotes: "notes",
	}
	e := NewHistoryEntry("Acme", result)
	if e.ID == "" || e.Timestamp == "" {
		t.Fatalf("entry missing identity: %+v", e)
	}
	if e.ProductName != "Acme" || len(e.Videos) != 1 || e.ResearchSummary == nil {
		t.Fatalf("entry did not carry the result: %+v", e)
	}
}
