/*
Package sqlite provides the SQLite-backed zone registry.

PURPOSE:
  Persists named fixed UTC offsets (name -> hours/minutes/seconds) for the
  API layer. This is deliberately NOT a timezone database: no DST, no
  historical rules, no tzdata. A record is nothing more than a display
  name attached to one of the fixed numeric offsets the engine already
  supports.

SEEDING:
  A handful of well-known fixed offsets are inserted on first migration
  so a fresh server resolves common names out of the box. They can be
  deleted or overwritten through the API.

CONCURRENCY:
  A sync.RWMutex serializes writers while allowing concurrent reads.
  SQLite is opened in WAL mode.

USAGE:
  store, err := sqlite.New("./data/zones.db")   // or ":memory:"
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/handlers.go: the ZoneStore interface this implements
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/calendar-engine/api"
	"github.com/warp/calendar-engine/calendar"
)

// Store implements api.ZoneStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ api.ZoneStore = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the schema and seeds the default offsets.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS zones (
		name TEXT PRIMARY KEY,
		hours INTEGER NOT NULL,
		minutes INTEGER NOT NULL,
		seconds INTEGER NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	seeds := []calendar.TimeZoneOffset{
		{Name: "EST", Hours: -5},
		{Name: "CET", Hours: 1},
		{Name: "JST", Hours: 9},
		{Name: "IST", Hours: 5, Minutes: 30},
		{Name: "NPT", Hours: 5, Minutes: 45},
	}
	for _, z := range seeds {
		_, err := s.db.Exec(
			`INSERT OR IGNORE INTO zones (name, hours, minutes, seconds) VALUES (?, ?, ?, ?)`,
			z.Name, z.Hours, z.Minutes, z.Seconds)
		if err != nil {
			return err
		}
	}
	return nil
}

// Put inserts or replaces a named offset.
func (s *Store) Put(ctx context.Context, zone calendar.TimeZoneOffset) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO zones (name, hours, minutes, seconds) VALUES (?, ?, ?, ?)`,
		zone.Name, zone.Hours, zone.Minutes, zone.Seconds)
	return err
}

// Get returns the offset registered under name.
func (s *Store) Get(ctx context.Context, name string) (calendar.TimeZoneOffset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var z calendar.TimeZoneOffset
	z.Name = name
	err := s.db.QueryRowContext(ctx,
		`SELECT hours, minutes, seconds FROM zones WHERE name = ?`, name).
		Scan(&z.Hours, &z.Minutes, &z.Seconds)
	if err == sql.ErrNoRows {
		return calendar.TimeZoneOffset{}, fmt.Errorf("%w: %s", api.ErrZoneNotFound, name)
	}
	if err != nil {
		return calendar.TimeZoneOffset{}, err
	}
	return z, nil
}

// List returns all registered offsets ordered by name.
func (s *Store) List(ctx context.Context) ([]calendar.TimeZoneOffset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, hours, minutes, seconds FROM zones ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []calendar.TimeZoneOffset
	for rows.Next() {
		var z calendar.TimeZoneOffset
		if err := rows.Scan(&z.Name, &z.Hours, &z.Minutes, &z.Seconds); err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

// Delete removes a named offset.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx, `DELETE FROM zones WHERE name = ?`, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", api.ErrZoneNotFound, name)
	}
	return nil
}
