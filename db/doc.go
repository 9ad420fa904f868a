// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and persistence.

# Connections

Open picks the driver from the database type and pings the server:

	conn, err := db.Open(db.DialectSQLite, "file:polls.db?_pragma=foreign_keys(1)")
	conn, err := db.Open(db.DialectPostgres, "postgres://...")

SQLite (modernc.org/sqlite) is the default. Postgres uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: Question text and publish date
  - choice: Answers per question with their vote tally

# Relationships

	question 1──* choice

choice.question_id uses ON DELETE CASCADE.

# Store

Store wraps the connection with the queries the handlers need:

	store := db.NewStore(conn)
	questions, err := store.ListPublished(ctx, time.Now(), 5)
	q, err := store.GetQuestion(ctx, id)          // db.ErrNotFound on miss
	err = store.IncrementVotes(ctx, q.ID, choiceID)

IncrementVotes is a single UPDATE (votes = votes + 1), so concurrent votes
for the same choice are serialized by the database.

# Seeding

Seed loads a JSON fixture at startup:

	{"questions": [{"question_text": "What's up?", "choices": ["Not much", "The sky"]}]}
*/
package db
