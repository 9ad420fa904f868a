// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (required for postgres)
  - SeedFile: Optional JSON fixture loaded at startup

# CLI Flags

	-p     Server port
	-d     Database URL
	-t     Database type
	-seed  Fixture file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SEED_FILE     → -seed

A .env file in the working directory is loaded first. It never overrides
variables already present in the environment, so the order of precedence is
CLI flags, then the environment, then .env, then defaults.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for postgres

With sqlite and no URL, the database lives in ./polls.db.
*/
package cliparse
