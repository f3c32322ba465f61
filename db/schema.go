// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/site-reviews/cliparse"
)

// Open connects to the configured database and returns a Store. The SQLite
// path gets WAL journaling so concurrent readers never block the writer.
func Open(cfg cliparse.Config) (*Store, error) {
	var conn *sql.DB
	var err error

	switch cfg.DatabaseType {
	case "postgres":
		conn, err = sql.Open("postgres", cfg.DatabaseURL)
	default:
		dsn := cfg.DatabaseURL + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
		conn, err = sql.Open("sqlite", dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return &Store{db: conn, dbType: cfg.DatabaseType}, nil
}

// CreateSchema creates the reviews and captchas tables plus the listing
// index. Safe to call multiple times - uses IF NOT EXISTS.
func (s *Store) CreateSchema() error {
	schema := schemaSQLite
	if s.dbType == "postgres" {
		schema = schemaPostgres
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS reviews (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    text TEXT NOT NULL,
    ts INTEGER NOT NULL,
    client_id TEXT,
    delete_token TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS captchas (
    cid TEXT PRIMARY KEY,
    answer TEXT NOT NULL,
    expires_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_ts ON reviews(ts DESC);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS reviews (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    text TEXT NOT NULL,
    ts BIGINT NOT NULL,
    client_id TEXT,
    delete_token TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS captchas (
    cid TEXT PRIMARY KEY,
    answer TEXT NOT NULL,
    expires_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_ts ON reviews(ts DESC);
`
