// Package store provides SQLite-based save-game storage. The whole game
// state is persisted as one JSON blob per save slot; loads run through the
// simulation's normalization pass so older or hand-edited saves come back
// with every derived field recomputed.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/hokim6252-glitch/ceosim/internal/sim"
)

// ErrNoSave is returned by Load when the slot has never been written.
var ErrNoSave = errors.New("store: no save in slot")

// DB wraps a SQLite connection for save-game persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		updated_at TEXT NOT NULL,
		payload TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS game_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes the full game state into a slot (insert or replace).
func (db *DB) Save(slot string, s *sim.State) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO saves (slot, updated_at, payload) VALUES (?, ?, ?)",
		slot, time.Now().UTC().Format(time.RFC3339), string(payload),
	)
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}

	slog.Info("game saved", "slot", slot, "date", s.Date.Format("2006-01-02"))
	return nil
}

// Load reads and normalizes the state in a slot.
func (db *DB) Load(slot string, catalog *sim.Catalog) (*sim.State, error) {
	var payload string
	err := db.conn.Get(&payload, "SELECT payload FROM saves WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}

	var s sim.State
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	sim.Normalize(&s, catalog)
	return &s, nil
}

// SaveInfo describes one occupied save slot.
type SaveInfo struct {
	Slot      string `db:"slot" json:"slot"`
	UpdatedAt string `db:"updated_at" json:"updated_at"`
}

// Slots lists occupied save slots, most recently written first.
func (db *DB) Slots() ([]SaveInfo, error) {
	var infos []SaveInfo
	err := db.conn.Select(&infos, "SELECT slot, updated_at FROM saves ORDER BY updated_at DESC")
	return infos, err
}

// Delete removes a save slot. Deleting an empty slot is not an error.
func (db *DB) Delete(slot string) error {
	_, err := db.conn.Exec("DELETE FROM saves WHERE slot = ?", slot)
	return err
}

// SaveMeta stores a key-value pair in game metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO game_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM game_meta WHERE key = ?", key)
	return value, err
}
