package models

import (
	"encoding/json"
	"time"
)

// RecentWindow is how far back a question counts as recently published
const RecentWindow = 24 * time.Hour

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether the question went live within the last day.
// Questions scheduled for the future are never recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.After(now) && !q.PubDate.Before(now.Add(-RecentWindow))
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// Request types

// Choice is kept undecoded so a string or fractional id is rejected as an
// unusable choice rather than failing the whole body
type VoteRequest struct {
	Choice json.RawMessage `json:"choice,omitempty"`
}

// ChoiceValue returns the submitted choice as text and whether one was given.
// An absent key and an explicit null both count as not given.
func (v VoteRequest) ChoiceValue() (string, bool) {
	if len(v.Choice) == 0 || string(v.Choice) == "null" {
		return "", false
	}
	return string(v.Choice), true
}

// Response types

type QuestionListResponse struct {
	Questions []Question `json:"questions"`
}

type ResultsResponse struct {
	Question   Question `json:"question"`
	Choices    []Choice `json:"choices"`
	TotalVotes int64    `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error        string `json:"error"`
	Message      string `json:"message,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
