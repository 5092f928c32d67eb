package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"fieldagenda/internal/storage"
)

type Store struct {
	connStr string
	db      *sql.DB
}

var _ storage.Provider = (*Store)(nil)

func NewStore(connStr string) *Store {
	return &Store{
		connStr: connStr,
	}
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetConfigPath returns the connection string the store was built with.
// Callers must not log it; it may reference an external host.
func (s *Store) GetConfigPath() string {
	return s.connStr
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		type TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		status TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		owner_id TEXT NOT NULL,
		linked_ticket_id TEXT NOT NULL DEFAULT '',
		recurrence TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
	CREATE INDEX IF NOT EXISTS idx_events_owner ON events(owner_id);

	CREATE TABLE IF NOT EXISTS participants (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		name TEXT NOT NULL,
		contact TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_participants_event ON participants(event_id);

	CREATE TABLE IF NOT EXISTS reminders (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		remind_at TEXT NOT NULL,
		channel TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_reminders_event ON reminders(event_id);

	CREATE TABLE IF NOT EXISTS tickets (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		motive TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		week_start INTEGER NOT NULL DEFAULT 0,
		default_owner_id TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := s.db.Exec(schema)
	return err
}
