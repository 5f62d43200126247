// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/livepoll/models"
	"github.com/danielhkuo/livepoll/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from different users
// for the same item are all counted exactly once
func TestConcurrentVotes(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	votingHandler := NewVotingHandler(st, cfg)

	pollID := testutil.CreateTestPoll(t, st)
	itemID := testutil.AddTestItem(t, st, pollID, "Only option")

	numVoters := 50

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			body := models.VoteRequest{ItemID: itemID, UserID: fmt.Sprintf("voter-%d", voterIdx)}
			req := testutil.MakeRequest("POST", "/api/polls/"+pollID+"/vote", body, nil)
			req.SetPathValue("id", pollID)
			w := httptest.NewRecorder()

			votingHandler.CastVote(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	res, err := st.GetResults(pollID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Items[0].Votes != numVoters {
		t.Errorf("Expected %d votes on item, got %d", numVoters, res.Items[0].Votes)
	}
	if res.TotalVotes != numVoters {
		t.Errorf("Expected total_votes %d, got %d", numVoters, res.TotalVotes)
	}
}

// TestConcurrentResultsDuringVoting polls results while users switch votes and
// checks every response is internally consistent
func TestConcurrentResultsDuringVoting(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	votingHandler := NewVotingHandler(st, cfg)
	resultsHandler := NewResultsHandler(st, cfg)

	pollID := testutil.CreateTestPoll(t, st)
	items := []string{
		testutil.AddTestItem(t, st, pollID, "A"),
		testutil.AddTestItem(t, st, pollID, "B"),
		testutil.AddTestItem(t, st, pollID, "C"),
	}

	const numVoters = 10
	const switches = 30

	var voters sync.WaitGroup
	for v := 0; v < numVoters; v++ {
		voters.Add(1)
		go func(v int) {
			defer voters.Done()
			for i := 0; i < switches; i++ {
				body := models.VoteRequest{ItemID: items[(v+i)%len(items)], UserID: fmt.Sprintf("voter-%d", v)}
				req := testutil.MakeRequest("POST", "/api/polls/"+pollID+"/vote", body, nil)
				req.SetPathValue("id", pollID)
				votingHandler.CastVote(httptest.NewRecorder(), req)
			}
		}(v)
	}

	stop := make(chan struct{})
	var inconsistent atomic.Int32
	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}

			req := httptest.NewRequest("GET", "/api/polls/"+pollID+"/results", nil)
			req.SetPathValue("id", pollID)
			w := httptest.NewRecorder()
			resultsHandler.GetResults(w, req)

			var res models.Results
			if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
				t.Errorf("Failed to decode results: %v", err)
				return
			}
			sum := 0
			for _, it := range res.Items {
				sum += it.Votes
			}
			if sum != res.TotalVotes {
				inconsistent.Add(1)
			}
		}
	}()

	voters.Wait()
	close(stop)
	readers.Wait()

	if n := inconsistent.Load(); n > 0 {
		t.Errorf("Observed %d inconsistent results snapshots", n)
	}

	res, err := st.GetResults(pollID)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalVotes != numVoters {
		t.Errorf("Expected %d voters, got %d", numVoters, res.TotalVotes)
	}
}
