// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/polls/models"
)

// ErrNotFound is returned by lookups when no matching row exists.
var ErrNotFound = errors.New("not found")

// Store handles question and choice persistence.
// Queries use $N placeholders, which both drivers accept.
type Store struct {
	db *sql.DB
}

// NewStore creates a store on an open connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListPublished returns up to limit questions published at or before notAfter,
// newest first.
func (s *Store) ListPublished(ctx context.Context, notAfter time.Time, limit int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id DESC
		LIMIT $2
	`, notAfter.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, nil
}

// GetQuestion looks up a question regardless of its publish date.
func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if err == sql.ErrNoRows {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to get question %d: %w", id, err)
	}

	return q, nil
}

// GetPublishedQuestion looks up a question and treats one published after
// notAfter as missing.
func (s *Store) GetPublishedQuestion(ctx context.Context, id int64, notAfter time.Time) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1 AND pub_date <= $2
	`, id, notAfter.UTC()).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if err == sql.ErrNoRows {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to get question %d: %w", id, err)
	}

	return q, nil
}

// ListChoices returns the choices of a question in creation order.
func (s *Store) ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list choices: %w", err)
	}

	return choices, nil
}

// GetChoice looks up a choice scoped to its owning question. A choice that
// exists under another question is reported as ErrNotFound.
func (s *Store) GetChoice(ctx context.Context, questionID, choiceID int64) (models.Choice, error) {
	var c models.Choice
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID).Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes)

	if err == sql.ErrNoRows {
		return models.Choice{}, ErrNotFound
	}
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to get choice %d: %w", choiceID, err)
	}

	return c, nil
}

// IncrementVotes adds one vote to a choice in a single statement so that
// concurrent voters never overwrite each other's increments.
func (s *Store) IncrementVotes(ctx context.Context, questionID, choiceID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// CountQuestions returns the number of questions, published or not.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM question`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

// CreateQuestion inserts a question and returns it with its assigned ID.
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	q := models.Question{QuestionText: text, PubDate: pubDate.UTC()}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, q.QuestionText, q.PubDate).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to create question: %w", err)
	}

	return q, nil
}

// AddChoice inserts a choice with zero votes under a question.
func (s *Store) AddChoice(ctx context.Context, questionID int64, text string) (models.Choice, error) {
	c := models.Choice{QuestionID: questionID, ChoiceText: text}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&c.ID)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to add choice: %w", err)
	}

	return c, nil
}
