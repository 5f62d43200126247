// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, description
  - AddItemRequest: text
  - VoteRequest: item_id, user_id

# Response Types

Types for JSON responses:

  - CreatePollResponse: success, poll_id, poll_url
  - AddItemResponse: success, item (id, text, votes)
  - VoteResponse: success
  - ErrorResponse: error, message

# Domain Types

Poll and Results are aliases of the store snapshot types:

  - Poll: id, title, description, created_at, is_active, items
  - Results: poll (id, title, description, is_active), items (id, text,
    votes) in creation order, total_votes
*/
package models
