// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/testutil"
)

func setupAPIHandler(t *testing.T) (*db.Store, *APIHandler) {
	t.Helper()

	store := testutil.SetupTestStore(t)
	return store, NewAPIHandler(store)
}

func TestAPIListQuestions(t *testing.T) {
	store, handler := setupAPIHandler(t)

	testutil.CreateTestQuestion(t, store, "Future", time.Hour)
	for i := 1; i <= 6; i++ {
		testutil.CreateTestQuestion(t, store, "Past", -time.Duration(i)*time.Minute)
	}

	req := httptest.NewRequest("GET", "/api/questions", nil)
	w := httptest.NewRecorder()

	handler.ListQuestions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.QuestionListResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Questions) != LatestLimit {
		t.Fatalf("Expected %d questions, got %d", LatestLimit, len(resp.Questions))
	}
	for i, q := range resp.Questions {
		if q.QuestionText == "Future" {
			t.Error("Future question should not be listed")
		}
		if i > 0 && q.PubDate.After(resp.Questions[i-1].PubDate) {
			t.Errorf("Questions not sorted newest first at index %d", i)
		}
	}
}

func TestAPIGetQuestion(t *testing.T) {
	store, handler := setupAPIHandler(t)

	past := testutil.CreateTestQuestion(t, store, "Past", -time.Hour)
	testutil.AddTestChoice(t, store, past.ID, "A")
	testutil.AddTestChoice(t, store, past.ID, "B")
	future := testutil.CreateTestQuestion(t, store, "Future", time.Hour)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"published", id(past.ID), http.StatusOK},
		{"scheduled", id(future.ID), http.StatusNotFound},
		{"missing", "9999", http.StatusNotFound},
		{"bad id", "x", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/questions/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetQuestion(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.QuestionWithChoices
			testutil.AssertJSON(t, w, &resp)
			if resp.Question.ID != past.ID || len(resp.Choices) != 2 {
				t.Errorf("Unexpected response: %+v", resp)
			}
		})
	}
}

func TestAPIVote(t *testing.T) {
	store, handler := setupAPIHandler(t)

	q := testutil.CreateTestQuestion(t, store, "Q1", -time.Hour)
	a := testutil.AddTestChoice(t, store, q.ID, "A")
	b := testutil.AddTestChoice(t, store, q.ID, "B")
	other := testutil.CreateTestQuestion(t, store, "Other", -time.Hour)
	foreign := testutil.AddTestChoice(t, store, other.ID, "Foreign")

	choice := func(n int64) json.RawMessage { return json.RawMessage(id(n)) }

	tests := []struct {
		name           string
		questionID     string
		body           interface{}
		expectedStatus int
		expectedA      int64
	}{
		{"valid vote", id(q.ID), models.VoteRequest{Choice: choice(a.ID)}, http.StatusOK, 1},
		{"no choice", id(q.ID), map[string]string{}, http.StatusBadRequest, 1},
		{"unknown choice", id(q.ID), models.VoteRequest{Choice: choice(9999)}, http.StatusBadRequest, 1},
		{"foreign choice", id(q.ID), models.VoteRequest{Choice: choice(foreign.ID)}, http.StatusBadRequest, 1},
		{"unknown question", "9999", models.VoteRequest{Choice: choice(a.ID)}, http.StatusNotFound, 1},
		{"id as string", id(q.ID), map[string]string{"choice": id(a.ID)}, http.StatusBadRequest, 1},
		{"fractional id", id(q.ID), map[string]float64{"choice": 1.5}, http.StatusBadRequest, 1},
		{"null choice", id(q.ID), map[string]interface{}{"choice": nil}, http.StatusBadRequest, 1},
		{"second valid vote", id(q.ID), models.VoteRequest{Choice: choice(a.ID)}, http.StatusOK, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/questions/"+tt.questionID+"/vote", tt.body, nil)
			req.SetPathValue("id", tt.questionID)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			switch tt.expectedStatus {
			case http.StatusOK:
				var resp models.ResultsResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.TotalVotes != tt.expectedA {
					t.Errorf("Expected total %d, got %d", tt.expectedA, resp.TotalVotes)
				}
			case http.StatusBadRequest:
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ErrorMessage != NoChoiceMessage {
					t.Errorf("Expected %q, got %q", NoChoiceMessage, resp.ErrorMessage)
				}
			}

			if v := testutil.Votes(t, store, q.ID, a.ID); v != tt.expectedA {
				t.Errorf("Expected A=%d, got %d", tt.expectedA, v)
			}
			if v := testutil.Votes(t, store, q.ID, b.ID); v != 0 {
				t.Errorf("Expected B=0, got %d", v)
			}
		})
	}
}

func TestAPIVote_InvalidJSON(t *testing.T) {
	store, handler := setupAPIHandler(t)
	q := testutil.CreateTestQuestion(t, store, "Q", -time.Hour)

	req := httptest.NewRequest("POST", "/api/questions/"+id(q.ID)+"/vote", strings.NewReader("{nope"))
	req.SetPathValue("id", id(q.ID))
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestAPIVote_InvalidJSONUnknownQuestion(t *testing.T) {
	_, handler := setupAPIHandler(t)

	req := httptest.NewRequest("POST", "/api/questions/9999/vote", strings.NewReader("{nope"))
	req.SetPathValue("id", "9999")
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestAPIGetResults(t *testing.T) {
	store, handler := setupAPIHandler(t)

	q := testutil.CreateTestQuestion(t, store, "Q", -time.Hour)
	a := testutil.AddTestChoice(t, store, q.ID, "A")
	b := testutil.AddTestChoice(t, store, q.ID, "B")
	for _, c := range []int64{a.ID, a.ID, b.ID} {
		if err := store.IncrementVotes(t.Context(), q.ID, c); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest("GET", "/api/questions/"+id(q.ID)+"/results", nil)
	req.SetPathValue("id", id(q.ID))
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 3 {
		t.Errorf("Expected 3 total votes, got %d", resp.TotalVotes)
	}
	if len(resp.Choices) != 2 || resp.Choices[0].Votes != 2 || resp.Choices[1].Votes != 1 {
		t.Errorf("Unexpected choices: %+v", resp.Choices)
	}

	req = httptest.NewRequest("GET", "/api/questions/9999/results", nil)
	req.SetPathValue("id", "9999")
	w = httptest.NewRecorder()
	handler.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
