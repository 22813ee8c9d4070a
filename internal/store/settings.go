package store

import (
	"encoding/json"
	"sync"

	"studio/internal/domain"
	"studio/internal/infra"
)

// SettingsStore holds the single current Settings value, mirrored in memory
// and persisted to the settings slot on every save.
type SettingsStore struct {
	kv     *KV
	logger infra.Logger

	mu      sync.RWMutex
	current domain.Settings
}

// NewSettingsStore loads the persisted settings or seeds the default profile
// when the slot is empty or unreadable.
func NewSettingsStore(kv *KV, logger infra.Logger) *SettingsStore {
	s := &SettingsStore{kv: kv, logger: logger, current: domain.DefaultSettings()}

	raw, ok, err := kv.Get(SlotSettings)
	if err != nil {
		logger.Warn().Err(err).Msg("settings: load failed, using defaults")
		return s
	}
	if !ok {
		s.persist(s.current)
		return s
	}
	var loaded domain.Settings
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		logger.Warn().Err(err).Msg("settings: stored value unreadable, using defaults")
		return s
	}
	s.current = loaded
	return s
}

// Current returns the settings in effect.
func (s *SettingsStore) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save replaces the current settings and persists them. Persistence failures
// are logged and ignored; the in-memory value is authoritative either way.
func (s *SettingsStore) Save(settings domain.Settings) {
	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	s.persist(settings)
}

func (s *SettingsStore) persist(settings domain.Settings) {
	raw, err := json.Marshal(settings)
	if err != nil {
		s.logger.Warn().Err(err).Msg("settings: marshal failed, skipping persist")
		return
	}
	if err := s.kv.Set(SlotSettings, string(raw)); err != nil {
		s.logger.Warn().Err(err).Msg("settings: persist failed")
	}
}
