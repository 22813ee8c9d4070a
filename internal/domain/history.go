package domain

import (
	"math/rand"
	"strconv"
	"time"
)

// HistoryEntry is one durable record of a past generation. Entries are
// immutable after creation; the only mutation the store allows is deletion.
type HistoryEntry struct {
	ID                         string           `json:"id"`
	Timestamp                  string           `json:"timestamp"`
	ProductName                string           `json:"productName"`
	Videos                     []VideoScript    `json:"videos"`
	ResearchSummary            *ResearchSummary `json:"researchSummary"`
	ContentStrategyNotes       string           `json:"contentStrategyNotes"`
	VisualStyleRecommendations string           `json:"visualStyleRecommendations"`
}

// NewHistoryID composes a random base-36 fragment with a time-based one.
// Collision resistance within a single session is all that is required;
// global uniqueness across installs is not.
func NewHistoryID() string {
	r := strconv.FormatUint(rand.Uint64(), 36)
	if len(r) > 8 {
		r = r[:8]
	}
	return "hist_" + r + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// NewHistoryEntry stamps a generation result into an immutable record.
func NewHistoryEntry(productName string, result GenerationResult) HistoryEntry {
	return HistoryEntry{
		ID:                         NewHistoryID(),
		Timestamp:                  time.Now().UTC().Format(time.RFC3339),
		ProductName:                productName,
		Videos:                     result.Videos,
		ResearchSummary:            result.ResearchSummary,
		ContentStrategyNotes:       result.ContentStrategyNotes,
		VisualStyleRecommendations: result.VisualStyleRecommendations,
	}
}
