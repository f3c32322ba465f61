// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing.

Configuration comes from CLI flags with environment-variable fallback:

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
    (default: reviews.db for SQLite; required for Postgres)

The resulting Config struct is passed explicitly to the store, handlers, and
router; nothing reads configuration ambiently after startup.
*/
package cliparse
