// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// Fixture is the JSON document accepted by Seed
type Fixture struct {
	Questions []FixtureQuestion `json:"questions"`
}

// PubDate defaults to the time of seeding when omitted
type FixtureQuestion struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
	Choices      []string   `json:"choices"`
}

// Seed loads questions and their choices from a JSON fixture.
// It returns the number of questions created. A database that already
// holds questions is left untouched so restarts do not duplicate data.
func Seed(ctx context.Context, store *Store, r io.Reader, now time.Time) (int, error) {
	existing, err := store.CountQuestions(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	var fx Fixture
	if err := json.NewDecoder(r).Decode(&fx); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	for i, fq := range fx.Questions {
		if fq.QuestionText == "" {
			return i, fmt.Errorf("%w: question %d has no question_text", ErrInvalidFixture, i)
		}
	}

	for i, fq := range fx.Questions {
		pubDate := now
		if fq.PubDate != nil {
			pubDate = *fq.PubDate
		}

		q, err := store.CreateQuestion(ctx, fq.QuestionText, pubDate)
		if err != nil {
			return i, err
		}

		for _, text := range fq.Choices {
			if _, err := store.AddChoice(ctx, q.ID, text); err != nil {
				return i, err
			}
		}
	}

	return len(fx.Questions), nil
}
