// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database access and schema creation.

# Backends

The store runs on SQLite (modernc.org/sqlite, the default) or PostgreSQL
(lib/pq), selected by Config.DatabaseType. SQLite opens with WAL journaling
and a busy timeout so concurrent requests serialize writes without errors.
Queries use $1-style placeholders and INSERT ... RETURNING, which both
engines accept, so only the schema differs per backend.

# Schema

Two tables:

  - reviews: id (store-assigned, strictly increasing), name, text, ts,
    client_id, delete_token
  - captchas: cid (primary key), answer, expires_at

plus an index on reviews(ts DESC) to keep listing cheap.

CreateSchema is idempotent - everything uses IF NOT EXISTS.

# Usage

	store, err := db.Open(cfg)
	if err != nil { ... }
	defer store.Close()
	if err := store.CreateSchema(); err != nil { ... }

Each store method commits independently before returning; callers hold no
locks across calls.
*/
package db
