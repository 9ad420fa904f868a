// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/templates"
)

// LatestLimit caps the index page
const LatestLimit = 5

// QuestionStore is the persistence the handlers need. *db.Store implements it.
type QuestionStore interface {
	ListPublished(ctx context.Context, notAfter time.Time, limit int) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int64) (models.Question, error)
	GetPublishedQuestion(ctx context.Context, id int64, notAfter time.Time) (models.Question, error)
	ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error)
	GetChoice(ctx context.Context, questionID, choiceID int64) (models.Choice, error)
	IncrementVotes(ctx context.Context, questionID, choiceID int64) error
}

type PollsHandler struct {
	store QuestionStore
	pages *templates.Renderer
	now   func() time.Time
}

func NewPollsHandler(store QuestionStore, pages *templates.Renderer) *PollsHandler {
	return &PollsHandler{store: store, pages: pages, now: time.Now}
}

// ResultsURL is where a successful vote redirects
func ResultsURL(questionID int64) string {
	return "/polls/" + strconv.FormatInt(questionID, 10) + "/results/"
}

// Index handles GET /polls/
func (h *PollsHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	questions, err := h.store.ListPublished(r.Context(), now, LatestLimit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, templates.PageIndex, map[string]interface{}{
		"latest_question_list": questions,
		"now":                  now,
	})
}

// Detail handles GET /polls/{id}/
// Questions with a future publish date are reported as missing
func (h *PollsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	question, err := h.store.GetPublishedQuestion(r.Context(), questionID, h.now())
	if errors.Is(err, db.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.renderDetail(w, r, question, "")
}

// Vote handles POST /polls/{id}/vote/
// Success redirects to the results page so a refresh never re-submits the vote.
func (h *PollsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		if questionMissing(r.Context(), h.store, questionID) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	// A repeated field counts as its last value
	var raw string
	values, present := r.PostForm["choice"]
	if present && len(values) > 0 {
		raw = values[len(values)-1]
	}

	question, err := castVote(r.Context(), h.store, questionID, raw, present)
	switch {
	case errors.Is(err, db.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, ErrNoChoice):
		h.renderDetail(w, r, question, NoChoiceMessage)
	case err != nil:
		slog.Error("failed to record vote", "error", err, "question_id", questionID)
		http.Error(w, "Failed to record vote", http.StatusInternalServerError)
	default:
		http.Redirect(w, r, ResultsURL(questionID), http.StatusSeeOther)
	}
}

func (h *PollsHandler) renderDetail(w http.ResponseWriter, r *http.Request, question models.Question, errorMessage string) {
	choices, err := h.store.ListChoices(r.Context(), question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", question.ID)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"question": question,
		"choices":  choices,
	}
	if errorMessage != "" {
		data["error_message"] = errorMessage
	}

	h.render(w, http.StatusOK, templates.PageDetail, data)
}

func (h *PollsHandler) render(w http.ResponseWriter, statusCode int, page string, data map[string]interface{}) {
	if err := h.pages.Render(w, statusCode, page, data); err != nil {
		slog.Error("failed to render page", "error", err, "page", page)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
