// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
)

// APIHandler serves the same views as PollsHandler as JSON
type APIHandler struct {
	store QuestionStore
	now   func() time.Time
}

func NewAPIHandler(store QuestionStore) *APIHandler {
	return &APIHandler{store: store, now: time.Now}
}

// ListQuestions handles GET /api/questions
func (h *APIHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.ListPublished(r.Context(), h.now(), LatestLimit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{
		Questions: questions,
	})
}

// GetQuestion handles GET /api/questions/{id}
// Unpublished questions are reported as missing
func (h *APIHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	question, err := h.store.GetPublishedQuestion(r.Context(), questionID, h.now())
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choices, err := h.store.ListChoices(r.Context(), questionID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
		Question: question,
		Choices:  choices,
	})
}

// GetResults handles GET /api/questions/{id}/results
func (h *APIHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	question, err := h.store.GetQuestion(r.Context(), questionID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.writeResults(w, r, question)
}

// Vote handles POST /api/questions/{id}/vote
// Body: {"choice": <id>}. Responds with the updated results.
func (h *APIHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		if questionMissing(r.Context(), h.store, questionID) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	raw, present := req.ChoiceValue()
	question, err := castVote(r.Context(), h.store, questionID, raw, present)
	switch {
	case errors.Is(err, db.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
	case errors.Is(err, ErrNoChoice):
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:        http.StatusText(http.StatusBadRequest),
			ErrorMessage: NoChoiceMessage,
		})
	case err != nil:
		slog.Error("failed to record vote", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
	default:
		h.writeResults(w, r, question)
	}
}

func (h *APIHandler) writeResults(w http.ResponseWriter, r *http.Request, question models.Question) {
	choices, err := h.store.ListChoices(r.Context(), question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", question.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Question:   question,
		Choices:    choices,
		TotalVotes: totalVotes(choices),
	})
}
