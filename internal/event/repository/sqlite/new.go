package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/log"
)

type implLogSink struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the SQLite database at path.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

// New creates a SQLite backed LogSink and runs its migrations.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.LogSink, error) {
	if db == nil {
		panic("event/repository/sqlite: db is required")
	}
	s := &implLogSink{db: db, l: l}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *implLogSink) Close() error {
	return s.db.Close()
}

func (s *implLogSink) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS event_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			received_at TEXT NOT NULL,
			text TEXT NOT NULL,
			email TEXT NOT NULL,
			title TEXT NOT NULL,
			event_date TEXT NOT NULL,
			event_time TEXT NOT NULL,
			description TEXT NOT NULL,
			recurrence TEXT NOT NULL,
			calendar_url TEXT NOT NULL,
			ics_url TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_event_log_received_at ON event_log(received_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
