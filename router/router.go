// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/templates"
)

func NewRouter(store handlers.QuestionStore, pages *templates.Renderer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollsHandler := handlers.NewPollsHandler(store, pages)
	apiHandler := handlers.NewAPIHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// HTML pages
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(pollsHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(pollsHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(pollsHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(pollsHandler.Vote))

	// JSON API
	api := func(h http.HandlerFunc) http.Handler {
		return middleware.CORS(middleware.WithLogging(h))
	}
	mux.Handle("GET /api/questions", api(apiHandler.ListQuestions))
	mux.Handle("GET /api/questions/{id}", api(apiHandler.GetQuestion))
	mux.Handle("GET /api/questions/{id}/results", api(apiHandler.GetResults))
	mux.Handle("POST /api/questions/{id}/vote", api(apiHandler.Vote))
	mux.Handle("OPTIONS /api/", api(func(w http.ResponseWriter, r *http.Request) {}))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return mux
}
