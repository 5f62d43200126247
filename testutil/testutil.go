// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/store"
)

// SetupTestStore creates an empty vote store
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New()
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		IDLength:       8,
		IDFormat:       "uuid",
		MaxTextLength:  100,
		StreamInterval: 20 * time.Millisecond,
	}
}

// CreateTestPoll creates a poll in the store and returns its ID
func CreateTestPoll(t *testing.T, st *store.Store) string {
	t.Helper()
	return st.CreatePoll("Test Poll", "A test poll").ID
}

// AddTestItem adds an item to a poll and returns the item ID
func AddTestItem(t *testing.T, st *store.Store, pollID, text string) string {
	t.Helper()

	item, err := st.AddItem(pollID, text)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return item.ID
}

// CastTestVote records a vote and fails the test if the store rejects it
func CastTestVote(t *testing.T, st *store.Store, pollID, userID, itemID string) {
	t.Helper()

	if err := st.CastVote(pollID, userID, itemID); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
