// Package settings persists UI preferences (sound, auto-break, last view
// mode, timer durations) in a small key-value sqlite table, separate from
// the task data backend so preferences survive backend switches.
package settings

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Known setting keys
const (
	KeySoundEnabled   = "sound_enabled"
	KeyAutoStartBreak = "auto_start_break"
	KeyViewMode       = "view_mode"
	KeyLastProject    = "last_project"
	KeyWorkMinutes    = "work_minutes"
	KeyLocale         = "locale"
)

// DB wraps the settings database connection
type DB struct {
	*sql.DB
}

// Open creates the settings database under the data directory and
// initializes the schema
func Open(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataDir, "settings.db"))
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// Get retrieves a setting value by key; missing keys return ""
func (db *DB) Get(key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// Set stores a setting value
func (db *DB) Set(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// GetBool reads a boolean setting, returning fallback for missing or
// unparsable values
func (db *DB) GetBool(key string, fallback bool) bool {
	v, err := db.Get(key)
	if err != nil || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// SetBool stores a boolean setting
func (db *DB) SetBool(key string, value bool) error {
	return db.Set(key, strconv.FormatBool(value))
}

// GetInt reads an integer setting, returning fallback for missing or
// unparsable values
func (db *DB) GetInt(key string, fallback int) int {
	v, err := db.Get(key)
	if err != nil || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

// SetInt stores an integer setting
func (db *DB) SetInt(key string, value int) error {
	return db.Set(key, strconv.Itoa(value))
}
