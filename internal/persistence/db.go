// Package persistence stores the galaxy, realms, leader pools and history in SQLite.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/star-realms/internal/news"
)

// DB wraps a SQLite connection for game state persistence.
type DB struct {
	conn *sqlx.DB
}

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
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
	CREATE TABLE IF NOT EXISTS realms (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		race TEXT NOT NULL,
		government TEXT NOT NULL,
		human INTEGER NOT NULL,
		credits INTEGER NOT NULL,
		ruler_id INTEGER,
		fleets_json TEXT NOT NULL,
		missions_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS leaders (
		realm_id INTEGER NOT NULL,
		id INTEGER NOT NULL,
		pool_index INTEGER NOT NULL,
		name TEXT NOT NULL,
		gender INTEGER NOT NULL,
		race TEXT NOT NULL,
		homeworld TEXT NOT NULL,
		age INTEGER NOT NULL,
		experience INTEGER NOT NULL,
		level INTEGER NOT NULL,
		job INTEGER NOT NULL,
		time_in_job INTEGER NOT NULL,
		title TEXT NOT NULL,
		military_rank INTEGER NOT NULL,
		parent_id INTEGER,
		perks_json TEXT NOT NULL,
		stats_json TEXT NOT NULL,
		wealth_used INTEGER NOT NULL,
		PRIMARY KEY (realm_id, id)
	);

	CREATE TABLE IF NOT EXISTS planets (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		owner INTEGER NOT NULL,
		population INTEGER NOT NULL,
		richness REAL NOT NULL,
		buildings_json TEXT NOT NULL,
		governor_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		turn INTEGER NOT NULL,
		realm_id INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_turn ON events(turn);
	CREATE INDEX IF NOT EXISTS idx_leaders_pool ON leaders(realm_id, pool_index);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveEvents stores history events. Events already saved are skipped.
func (db *DB) SaveEvents(events []news.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO events (id, turn, realm_id, description, category) VALUES (?, ?, ?, ?, ?)",
			e.ID.String(), e.Turn, e.Realm, e.Description, e.Category,
		)
		if err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}
	return tx.Commit()
}

// RecentEvents returns the most recent N events, newest first.
func (db *DB) RecentEvents(limit int) ([]news.Event, error) {
	var events []news.Event
	err := db.conn.Select(&events,
		"SELECT id, turn, realm_id AS realm, description, category FROM events ORDER BY turn DESC, rowid DESC LIMIT ?",
		limit,
	)
	return events, err
}

// SaveMeta stores a key-value pair in world metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value, or ErrNotFound.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("meta %q: %w", key, ErrNotFound)
	}
	return value, err
}
