// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
)

// NoChoiceMessage is shown whenever a vote names no usable choice.
// A missing field and a choice from another question read the same to the voter.
const NoChoiceMessage = "You didn't select a choice."

// ErrNoChoice rejects a vote without mutating any tally
var ErrNoChoice = errors.New("no choice selected")

// ChoiceResolution is the outcome of matching submitted input to a choice
type ChoiceResolution int

const (
	ChoiceFound ChoiceResolution = iota
	ChoiceMissing
	ChoiceNotOwned
)

func (r ChoiceResolution) String() string {
	switch r {
	case ChoiceFound:
		return "found"
	case ChoiceMissing:
		return "missing"
	case ChoiceNotOwned:
		return "not_owned"
	default:
		return "unknown(" + strconv.Itoa(int(r)) + ")"
	}
}

// resolveChoice matches the raw "choice" value against the question's choices.
// present is false when the field was absent from the request.
// Only store failures are returned as errors.
func resolveChoice(ctx context.Context, store QuestionStore, questionID int64, raw string, present bool) (models.Choice, ChoiceResolution, error) {
	if !present {
		return models.Choice{}, ChoiceMissing, nil
	}

	choiceID, ok := parseID(raw)
	if !ok {
		return models.Choice{}, ChoiceNotOwned, nil
	}

	choice, err := store.GetChoice(ctx, questionID, choiceID)
	if errors.Is(err, db.ErrNotFound) {
		return models.Choice{}, ChoiceNotOwned, nil
	}
	if err != nil {
		return models.Choice{}, ChoiceNotOwned, err
	}

	return choice, ChoiceFound, nil
}

// castVote runs one vote: look up the question, resolve the choice, then
// increment it. It returns the question so a rejected vote can be re-shown.
//
// Errors: db.ErrNotFound for an unknown question (checked before the choice),
// ErrNoChoice when the choice is absent or foreign, anything else is a store fault.
func castVote(ctx context.Context, store QuestionStore, questionID int64, raw string, present bool) (models.Question, error) {
	question, err := store.GetQuestion(ctx, questionID)
	if err != nil {
		return models.Question{}, err
	}

	choice, resolution, err := resolveChoice(ctx, store, questionID, raw, present)
	if err != nil {
		return question, fmt.Errorf("failed to resolve choice: %w", err)
	}
	if resolution != ChoiceFound {
		slog.Info("vote rejected",
			"question_id", questionID,
			"reason", resolution.String(),
			"request_id", middleware.RequestID(ctx),
		)
		return question, ErrNoChoice
	}

	err = store.IncrementVotes(ctx, questionID, choice.ID)
	if errors.Is(err, db.ErrNotFound) {
		// Deleted between lookup and update
		return question, ErrNoChoice
	}
	if err != nil {
		return question, err
	}

	slog.Info("vote recorded",
		"question_id", questionID,
		"choice_id", choice.ID,
		"request_id", middleware.RequestID(ctx),
	)

	return question, nil
}

// questionMissing reports whether the question is known to be absent.
// A malformed request body is only blamed once the question exists.
func questionMissing(ctx context.Context, store QuestionStore, questionID int64) bool {
	_, err := store.GetQuestion(ctx, questionID)
	return errors.Is(err, db.ErrNotFound)
}

// parseID accepts the non-negative decimal IDs used in URLs and forms
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
