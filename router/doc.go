// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the livepoll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Polls:

	POST /api/polls              - Create poll
	GET  /api/polls/{id}         - Poll details and items
	POST /api/polls/{id}/items   - Propose item
	POST /api/polls/{id}/vote    - Cast or move a vote

Results:

	GET /api/polls/{id}/results        - Current tally
	GET /api/polls/{id}/results/stream - Tally pushed over WebSocket
*/
package router
