// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the livepoll API server.

livepoll lets an organiser create a poll, lets participants propose items and
vote for one of them, and serves live tallies to everyone watching. All state
is held in memory and lost on restart.

# Starting the Server

	go run .

Or with flags:

	go run . -p 3318 -id-length 8

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - ID_LENGTH (-id-length): Length of poll and item ids (default: 8)
  - MAX_TEXT_LENGTH (-max-text): Longest accepted title or item (default: 500)
  - STREAM_INTERVAL (-stream-interval): Result stream refresh (default: 1s)

Variables may also come from a .env file (-env-file).

# Architecture

  - store: in-memory vote store (polls, items, exclusive votes)
  - handlers: HTTP request handlers (polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - ids: Id generation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
