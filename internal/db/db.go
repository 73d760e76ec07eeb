// Package db provides SQLite storage for the themedeck selection journal.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite handle with the component logger.
type DB struct {
	*sql.DB
	logger zerolog.Logger
	path   string
}

// Config controls how the database is opened.
type Config struct {
	Path   string
	Logger zerolog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id            TEXT PRIMARY KEY,
	timestamp     TEXT NOT NULL,
	type          TEXT NOT NULL,
	entity_type   TEXT NOT NULL,
	entity_id     TEXT NOT NULL,
	payload_json  TEXT,
	metadata_json TEXT
);
CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events (timestamp, id);
CREATE INDEX IF NOT EXISTS idx_events_entity ON events (entity_type, entity_id);
`

// Open opens (creating if needed) the database at cfg.Path and applies the schema.
// Use ":memory:" for an in-process database.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database dir: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps :memory: shared.
	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: sqlDB, logger: cfg.Logger, path: cfg.Path}
	if err := db.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	db.logger.Debug().Str("path", cfg.Path).Msg("journal database ready")
	return db, nil
}

func (db *DB) migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if db.path != ":memory:" {
		if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL`); err != nil {
			return fmt.Errorf("failed to enable WAL: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Path returns the database location.
func (db *DB) Path() string {
	return db.path
}
