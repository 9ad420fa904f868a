// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

Polls lists recently published questions, shows a question's choices,
records votes, and shows the results.

# Starting the Server

With no configuration the server uses SQLite in ./polls.db on port 3318:

	go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..." -seed fixtures.json

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (required for postgres)
  - SEED_FILE (-seed): JSON fixture loaded into an empty database

A .env file in the working directory is read as well.

# Architecture

  - handlers: HTML and JSON request handlers, vote transition
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, request IDs, CORS, JSON helpers
  - templates: Embedded HTML pages
  - models: Domain and API types
  - db: Connections, schema, Store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
