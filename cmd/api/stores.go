package main

import (
	"context"
	"database/sql"
	"fmt"

	"google.golang.org/api/option"

	"event-calendar-webhook/config"
	"event-calendar-webhook/internal/event/repository"
	driveRepo "event-calendar-webhook/internal/event/repository/drive"
	minioRepo "event-calendar-webhook/internal/event/repository/minio"
	postgreRepo "event-calendar-webhook/internal/event/repository/postgre"
	rabbitmqRepo "event-calendar-webhook/internal/event/repository/rabbitmq"
	sheetsRepo "event-calendar-webhook/internal/event/repository/sheets"
	sqliteRepo "event-calendar-webhook/internal/event/repository/sqlite"
	"event-calendar-webhook/pkg/gdrive"
	"event-calendar-webhook/pkg/google"
	"event-calendar-webhook/pkg/gsheets"
	"event-calendar-webhook/pkg/log"
)

// stores holds the configured collaborators and whatever must be closed.
type stores struct {
	files   repository.FileStore
	sink    repository.LogSink
	closers []repository.Closer
	l       log.Logger
}

func (s *stores) Close(ctx context.Context) {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.l.Warnf(ctx, "Failed to close store: %v", err)
		}
	}
}

func newStores(ctx context.Context, cfg *config.Config, l log.Logger) (*stores, error) {
	s := &stores{l: l}

	var googleOpt option.ClientOption
	if cfg.UsesGoogle() {
		opt, err := google.Credentials{
			Path:      cfg.Google.CredentialsPath,
			TokenPath: cfg.Google.TokenPath,
		}.ClientOption(ctx, gsheets.Scope, gdrive.Scope)
		if err != nil {
			l.Warn(ctx, "→ Run `go run scripts/google-auth/main.go` to generate token.json")
			return nil, fmt.Errorf("failed to load Google credentials: %w", err)
		}
		googleOpt = opt
	}

	files, err := newFileStore(ctx, cfg, googleOpt, l)
	if err != nil {
		return nil, err
	}
	s.files = files

	sink, err := newLogSink(ctx, cfg, googleOpt, l)
	if err != nil {
		return nil, err
	}
	s.sink = sink
	if c, ok := sink.(repository.Closer); ok {
		s.closers = append(s.closers, c)
	}

	return s, nil
}

func newFileStore(ctx context.Context, cfg *config.Config, googleOpt option.ClientOption, l log.Logger) (repository.FileStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverDrive:
		client, err := gdrive.NewClient(ctx, googleOpt)
		if err != nil {
			return nil, err
		}
		l.Info(ctx, "✅ Google Drive file store initialized")
		return driveRepo.New(client, cfg.Storage.Drive.FolderID, l), nil

	case config.StorageDriverMinIO:
		minioCfg := minioRepo.Config{
			Endpoint:       cfg.Storage.MinIO.Endpoint,
			PublicEndpoint: cfg.Storage.MinIO.PublicEndpoint,
			AccessKey:      cfg.Storage.MinIO.AccessKey,
			SecretKey:      cfg.Storage.MinIO.SecretKey,
			Bucket:         cfg.Storage.MinIO.Bucket,
			Region:         cfg.Storage.MinIO.Region,
			UseSSL:         cfg.Storage.MinIO.UseSSL,
		}
		client, err := minioRepo.NewClient(minioCfg)
		if err != nil {
			return nil, err
		}
		return minioRepo.New(ctx, client, minioCfg, l)
	}
	return nil, fmt.Errorf("%w: storage %q", repository.ErrUnknownDriver, cfg.Storage.Driver)
}

func newLogSink(ctx context.Context, cfg *config.Config, googleOpt option.ClientOption, l log.Logger) (repository.LogSink, error) {
	switch cfg.EventLog.Driver {
	case config.EventLogDriverSheets:
		client, err := gsheets.NewClient(ctx, googleOpt)
		if err != nil {
			return nil, err
		}
		l.Info(ctx, "✅ Google Sheets event log initialized")
		return sheetsRepo.New(client, cfg.EventLog.Sheets.SpreadsheetID, cfg.EventLog.Sheets.SheetName, l), nil

	case config.EventLogDriverPostgres:
		return openSQLSink(ctx, postgreRepo.Open, postgreRepo.New, cfg.EventLog.Postgres.DSN, l)

	case config.EventLogDriverSQLite:
		return openSQLSink(ctx, sqliteRepo.Open, sqliteRepo.New, cfg.EventLog.SQLite.Path, l)

	case config.EventLogDriverAMQP:
		return rabbitmqRepo.New(ctx, rabbitmqRepo.Config{
			URL:        cfg.EventLog.AMQP.URL,
			Exchange:   cfg.EventLog.AMQP.Exchange,
			RoutingKey: cfg.EventLog.AMQP.RoutingKey,
		}, l)
	}
	return nil, fmt.Errorf("%w: eventlog %q", repository.ErrUnknownDriver, cfg.EventLog.Driver)
}

type (
	openDBFunc     func(ctx context.Context, dsn string) (*sql.DB, error)
	newSQLSinkFunc func(ctx context.Context, db *sql.DB, l log.Logger) (repository.LogSink, error)
)

// openSQLSink opens the database behind a SQL sink. The database is closed
// again when the sink cannot be built on it.
func openSQLSink(ctx context.Context, open openDBFunc, build newSQLSinkFunc, dsn string, l log.Logger) (repository.LogSink, error) {
	db, err := open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	sink, err := build(ctx, db, l)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			l.Warnf(ctx, "Failed to close database after setup error: %v", closeErr)
		}
		return nil, err
	}
	return sink, nil
}
