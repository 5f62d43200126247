// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/livepoll/models"
	"github.com/danielhkuo/livepoll/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

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

func TestRootEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "livepoll API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}

	t.Run("unknown path is not the root", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/nope", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestRouteExistence(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	// 400 and 404 are valid handler responses here; 405 means no route
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/poll/test-id"},
		{"POST", "/api/polls"},
		{"GET", "/api/polls/test-id"},
		{"POST", "/api/polls/test-id/items"},
		{"POST", "/api/polls/test-id/vote"},
		{"GET", "/api/polls/test-id/results"},
		{"GET", "/api/polls/test-id/results/stream"},
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
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/api/polls/test-id"},
		{"GET", "/api/polls/test-id/vote"},
		{"PUT", "/api/polls/test-id/items"},
		{"POST", "/api/polls/test-id/results"},
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

func TestPollURLServesPoll(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/polls", models.CreatePollRequest{Title: "Lunch"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreatePollResponse
	testutil.AssertJSON(t, w, &created)

	if created.PollURL != models.PollURLPrefix+created.PollID {
		t.Fatalf("Expected poll_url %q, got %q", models.PollURLPrefix+created.PollID, created.PollURL)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", created.PollURL, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	if poll.ID != created.PollID || poll.Title != "Lunch" {
		t.Errorf("Unexpected poll at %s: %+v", created.PollURL, poll)
	}

	t.Run("unknown poll", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", models.PollURLPrefix+"missing", nil))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

// TestLunchScenario drives a whole poll through the router
func TestLunchScenario(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	do := func(method, path string, body interface{}, expected int, v interface{}) {
		t.Helper()
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		testutil.AssertStatus(t, w, expected)
		if v != nil {
			testutil.AssertJSON(t, w, v)
		}
	}

	var created models.CreatePollResponse
	do("POST", "/api/polls", models.CreatePollRequest{Title: "Lunch", Description: "Where to eat"}, http.StatusCreated, &created)
	base := "/api/polls/" + created.PollID

	var tacos, pizza models.AddItemResponse
	do("POST", base+"/items", models.AddItemRequest{Text: "Tacos"}, http.StatusCreated, &tacos)
	do("POST", base+"/items", models.AddItemRequest{Text: "Pizza"}, http.StatusCreated, &pizza)

	do("POST", base+"/vote", models.VoteRequest{UserID: "u1", ItemID: tacos.Item.ID}, http.StatusOK, nil)
	do("POST", base+"/vote", models.VoteRequest{UserID: "u2", ItemID: pizza.Item.ID}, http.StatusOK, nil)
	do("POST", base+"/vote", models.VoteRequest{UserID: "u1", ItemID: pizza.Item.ID}, http.StatusOK, nil)

	var res models.Results
	do("GET", base+"/results", nil, http.StatusOK, &res)

	if res.Poll.Title != "Lunch" || res.Poll.Description != "Where to eat" {
		t.Errorf("Unexpected poll info: %+v", res.Poll)
	}
	if res.TotalVotes != 2 {
		t.Errorf("Expected total_votes 2, got %d", res.TotalVotes)
	}
	want := []struct {
		id    string
		text  string
		votes int
	}{
		{tacos.Item.ID, "Tacos", 0},
		{pizza.Item.ID, "Pizza", 2},
	}
	if len(res.Items) != len(want) {
		t.Fatalf("Expected %d items, got %d", len(want), len(res.Items))
	}
	for i, w := range want {
		got := res.Items[i]
		if got.ID != w.id || got.Text != w.text || got.Votes != w.votes {
			t.Errorf("Item %d: expected %+v, got %+v", i, w, got)
		}
	}
}
