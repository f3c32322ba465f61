// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the site-reviews server.

The binary serves a small marketing website plus a JSON reviews API:
visitors read and post short named comments, gated by an arithmetic captcha
on the first post and a per-device identity cookie afterwards.

# Starting the Server

	go run . -p 8080

With no flags the server uses a local SQLite file (reviews.db). A .env file
in the working directory is loaded if present.

# Configuration

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file path or Postgres connection string

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (reviews API, page rendering)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging and JSON helpers
  - models: Request/response types
  - reviews: Business rules (sticky names, captcha gate, dual-path delete)
  - captcha: Arithmetic challenge issuance and single-use verification
  - identity: aj_client_id cookie handling
  - db: Store, schema creation, SQLite/Postgres backends
  - auth: Token generation and constant-time comparison
  - cliparse: Configuration parsing

If the store fails to open at startup, the reviews API degrades to 503 and
the page routes keep serving.

See package documentation for each component.
*/
package main
