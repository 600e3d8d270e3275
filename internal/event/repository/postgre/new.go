package postgre

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/log"
)

type implLogSink struct {
	db *sql.DB
	l  log.Logger
}

// Open connects to PostgreSQL using a lib/pq DSN.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	return db, nil
}

// New creates a PostgreSQL backed LogSink and creates its table if missing.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.LogSink, error) {
	if db == nil {
		panic("event/repository/postgre: db is required")
	}
	s := &implLogSink{db: db, l: l}
	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		return nil, fmt.Errorf("failed to initialize db schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying connection pool.
func (s *implLogSink) Close() error {
	return s.db.Close()
}
