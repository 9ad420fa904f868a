// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls app.

# Handler Types

  - PollsHandler: HTML pages (index, detail, results, vote)
  - APIHandler: the same operations as JSON

Both depend on a QuestionStore, which *db.Store implements:

	pollsHandler := handlers.NewPollsHandler(store, pages)

# Visibility

A question whose publish date is in the future is hidden from the index and
the detail page (404). Results and voting look questions up by ID only.

# Voting Flow

POST /polls/{id}/vote/ with form field "choice":

	question lookup ──miss──▶ 404
	      │
	resolve choice ──missing / not owned──▶ 200 detail page + error_message
	      │
	votes = votes + 1 ──▶ 303 See Other /polls/{id}/results/

Exactly one outcome per request. A rejected vote never touches any tally.
The redirect keeps a browser refresh from submitting the vote again.

resolveChoice reports which of ChoiceFound, ChoiceMissing, or ChoiceNotOwned
applied. Missing and not-owned share the single message "You didn't select
a choice."; the distinction only shows up in logs.

# Concurrency

Handlers hold no shared state. The increment is one UPDATE statement, so
simultaneous votes for the same choice are serialized by the database.
*/
package handlers
