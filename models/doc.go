// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request, and response types for the polls app.

# Domain Types

Question is a prompt with a publish date:

	type Question struct {
		ID           int64
		QuestionText string
		PubDate      time.Time
	}

A question is visible to visitors only once PubDate <= now. Questions are
scheduled by setting PubDate in the future.

Choice is one answer to a question and carries the running tally:

	type Choice struct {
		ID         int64
		QuestionID int64
		ChoiceText string
		Votes      int64
	}

Each choice belongs to exactly one question. Deleting a question deletes
its choices.

# Recently Published

WasPublishedRecently reports whether a question went live within the last
24 hours. Future questions are never recent:

	q.WasPublishedRecently(time.Now())

# API Types

VoteRequest is the JSON body for POST /api/questions/{id}/vote. Choice is
kept as raw JSON; ChoiceValue reports it as text plus whether it was given,
so {"choice": "3"} or {"choice": 1.5} reach choice validation instead of
failing to decode:

	{"choice": 3}

ResultsResponse carries a question, its choices with vote counts, and the
total across all choices.

# Errors

ErrorResponse is the JSON error body. ErrorMessage carries the same
user-facing text the HTML detail page shows on a rejected vote.
*/
package models
