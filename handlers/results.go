// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/templates"
)

// Results handles GET /polls/{id}/results/
func (h *PollsHandler) Results(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	question, err := h.store.GetQuestion(r.Context(), questionID)
	if errors.Is(err, db.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	choices, err := h.store.ListChoices(r.Context(), questionID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", questionID)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, templates.PageResults, map[string]interface{}{
		"question":    question,
		"choices":     choices,
		"total_votes": totalVotes(choices),
	})
}

func totalVotes(choices []models.Choice) int64 {
	var total int64
	for _, c := range choices {
		total += c.Votes
	}
	return total
}
