// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/handlers"
	"github.com/danielhkuo/livepoll/middleware"
)

func NewRouter(st handlers.VoteStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll management (admin page)
	mux.HandleFunc("POST /api/polls", middleware.WithLogging(pollHandler.CreatePoll))

	// Participant operations
	mux.HandleFunc("GET /poll/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /api/polls/{id}/items", middleware.WithLogging(pollHandler.AddItem))
	mux.HandleFunc("POST /api/polls/{id}/vote", middleware.WithLogging(votingHandler.CastVote))

	// Live results
	mux.HandleFunc("GET /api/polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /api/polls/{id}/results/stream", middleware.WithLogging(resultsHandler.StreamResults))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("livepoll API v1"))
	})

	return mux
}
