// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls app.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, pages)

# Endpoints

Health:

	GET /health

Pages (HTML):

	GET  /                    - Redirect to /polls/
	GET  /polls/              - Latest five published questions
	GET  /polls/{id}/         - Question and vote form (published only)
	GET  /polls/{id}/results/ - Tallies
	POST /polls/{id}/vote/    - Record a vote, then redirect to results

JSON API (CORS enabled):

	GET  /api/questions              - Latest five published questions
	GET  /api/questions/{id}         - Question with choices
	GET  /api/questions/{id}/results - Tallies and total
	POST /api/questions/{id}/vote    - Record a vote ({"choice": id})

Trailing-slash page routes end in {$} so they match exactly.

# Handler Initialization

The router creates handler instances with dependency injection:

	pollsHandler := handlers.NewPollsHandler(store, pages)
	apiHandler := handlers.NewAPIHandler(store)

Every route except /health is wrapped with request logging.
*/
package router
