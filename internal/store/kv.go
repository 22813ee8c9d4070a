// Package store persists the application's two durable slots, the product
// settings and the generation history, in a local SQLite file. The store is
// synchronous and session-local; in-memory state stays authoritative and a
// failed write is never allowed to block or corrupt it.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Slot keys for the two persisted values.
const (
	SlotSettings = "vvc_settings"
	SlotHistory  = "vvc_history"
)

// KV is a minimal key-value table over SQLite. Values are serialized text
// rewritten wholesale on every mutation.
type KV struct {
	conn *sql.DB
}

// OpenKV opens (or creates) the SQLite file at path and ensures the table
// exists.
func OpenKV(path string) (*KV, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping database: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("store: create tables: %w", err)
	}

	return &KV{conn: conn}, nil
}

// Get reads the value stored under key. The second return reports presence.
func (kv *KV) Get(key string) (string, bool, error) {
	var value string
	err := kv.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: get %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (kv *KV) Set(key, value string) error {
	_, err := kv.conn.Exec(`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection.
func (kv *KV) Close() error {
	return kv.conn.Close()
}
