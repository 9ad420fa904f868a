// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/templates"
	"github.com/danielhkuo/polls/testutil"
)

func setupRouter(t *testing.T) (*db.Store, *http.ServeMux) {
	t.Helper()

	store := testutil.SetupTestStore(t)
	pages, err := templates.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}

	return store, NewRouter(store, pages)
}

func TestHealthEndpoint(t *testing.T) {
	_, mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootRedirectsToIndex(t *testing.T) {
	_, mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/polls/" {
		t.Errorf("Expected redirect to /polls/, got %q", loc)
	}
}

func TestRouteExistence(t *testing.T) {
	_, mux := setupRouter(t)

	// 404 from the handler is fine here; 405 means the route is missing
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"GET", "/polls/"},
		{"GET", "/polls/1/"},
		{"GET", "/polls/1/results/"},
		{"POST", "/polls/1/vote/"},

		{"GET", "/api/questions"},
		{"GET", "/api/questions/1"},
		{"GET", "/api/questions/1/results"},
		{"POST", "/api/questions/1/vote"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	_, mux := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"GET", "/polls/1/vote/"},
		{"POST", "/polls/1/results/"},
		{"DELETE", "/api/questions/1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPathsNotFound(t *testing.T) {
	_, mux := setupRouter(t)

	for _, path := range []string{"/polls/1/extra/", "/nowhere"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for %s, got %d", path, w.Code)
		}
	}
}

// Full POST-redirect-GET round trip through the mux
func TestVoteFlow(t *testing.T) {
	store, mux := setupRouter(t)

	q := testutil.CreateTestQuestion(t, store, "What's new?", -time.Hour)
	a := testutil.AddTestChoice(t, store, q.ID, "Not much")
	testutil.AddTestChoice(t, store, q.ID, "The sky")
	qid := strconv.FormatInt(q.ID, 10)

	// Index lists it
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/polls/", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `href="/polls/`+qid+`/"`) {
		t.Fatalf("Expected index to link the question: %s", w.Body.String())
	}

	// Vote
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest("/polls/"+qid+"/vote/", url.Values{
		"choice": {strconv.FormatInt(a.ID, 10)},
	}))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected request ID header")
	}

	// Follow the redirect
	loc := w.Header().Get("Location")
	if loc != handlers.ResultsURL(q.ID) {
		t.Fatalf("Expected redirect to %s, got %q", handlers.ResultsURL(q.ID), loc)
	}
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", loc, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Not much -- 1 vote<") {
		t.Errorf("Expected tally on results page: %s", w.Body.String())
	}

	// Empty submission re-renders the form
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest("/polls/"+qid+"/vote/", url.Values{}))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), html.EscapeString(handlers.NoChoiceMessage)) {
		t.Errorf("Expected error message: %s", w.Body.String())
	}

	if v := testutil.Votes(t, store, q.ID, a.ID); v != 1 {
		t.Errorf("Expected 1 vote, got %d", v)
	}
}

func TestAPICORS(t *testing.T) {
	_, mux := setupRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/questions/1/vote", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Error("Expected CORS headers on API preflight")
	}

	req = httptest.NewRequest("GET", "/api/questions", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS headers on API responses")
	}
}
