package store

import (
	"encoding/json"
	"sync"

	"studio/internal/domain"
	"studio/internal/infra"
)

// HistoryStore is the ordered log of past generation results, newest first.
// The full slice is mirrored in memory and rewritten wholesale to the history
// slot on every mutation so the persisted form can never drift from what the
// session sees.
type HistoryStore struct {
	kv     *KV
	logger infra.Logger

	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore loads the persisted history. A missing or unreadable slot
// yields an empty log.
func NewHistoryStore(kv *KV, logger infra.Logger) *HistoryStore {
	h := &HistoryStore{kv: kv, logger: logger, entries: []domain.HistoryEntry{}}

	raw, ok, err := kv.Get(SlotHistory)
	if err != nil {
		logger.Warn().Err(err).Msg("history: load failed, starting empty")
		return h
	}
	if !ok {
		return h
	}
	var loaded []domain.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		logger.Warn().Err(err).Msg("history: stored value unreadable, starting empty")
		return h
	}
	if loaded != nil {
		h.entries = loaded
	}
	return h
}

// List returns a copy of the log, newest first.
func (h *HistoryStore) List() []domain.HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Prepend records a new entry at the head of the log.
func (h *HistoryStore) Prepend(entry domain.HistoryEntry) {
	h.mu.Lock()
	h.entries = append([]domain.HistoryEntry{entry}, h.entries...)
	snapshot := make([]domain.HistoryEntry, len(h.entries))
	copy(snapshot, h.entries)
	h.mu.Unlock()
	h.persist(snapshot)
}

// Delete removes at most one entry by id. Deleting an unknown id is a no-op.
func (h *HistoryStore) Delete(id string) {
	h.mu.Lock()
	idx := -1
	for i, e := range h.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		h.mu.Unlock()
		return
	}
	h.entries = append(h.entries[:idx], h.entries[idx+1:]...)
	snapshot := make([]domain.HistoryEntry, len(h.entries))
	copy(snapshot, h.entries)
	h.mu.Unlock()
	h.persist(snapshot)
}

func (h *HistoryStore) persist(entries []domain.HistoryEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		h.logger.Warn().Err(err).Msg("history: marshal failed, skipping persist")
		return
	}
	if err := h.kv.Set(SlotHistory, string(raw)); err != nil {
		h.logger.Warn().Err(err).Msg("history: persist failed")
	}
}
