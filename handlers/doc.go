// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the livepoll API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - PollHandler: Poll creation, lookup and item proposals
  - VotingHandler: Vote casting
  - ResultsHandler: Live tallies, polled or streamed

Handlers are created via constructor functions that accept a VoteStore and
Config:

	pollHandler := handlers.NewPollHandler(st, cfg)

# Polls and Items

	POST /api/polls             → CreatePoll (returns poll_id, poll_url)
	GET  /api/polls/{id}        → GetPoll
	POST /api/polls/{id}/items  → AddItem

# Voting

	POST /api/polls/{id}/vote   → CastVote

Each user has one vote per poll. Voting for another item moves it. Unknown
items answer 400 "Vote failed"; unknown polls answer 404.

# Results

	GET /api/polls/{id}/results        → GetResults
	GET /api/polls/{id}/results/stream → StreamResults (WebSocket)

The stream sends the results JSON on connect and again whenever it changes.
*/
package handlers
