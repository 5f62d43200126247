// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "time"

// Poll is a point-in-time copy of a poll. Per-user votes are never exposed.
type Poll struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
	Items       []Item    `json:"items"`
}

// Item is one option of a poll with its current vote count.
type Item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// PollInfo is the poll metadata reported with results.
type PollInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// ItemResult is one item's tally.
type ItemResult struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Results is the tally served to live readers. TotalVotes counts distinct
// voting users.
type Results struct {
	Poll       PollInfo     `json:"poll"`
	Items      []ItemResult `json:"items"`
	TotalVotes int          `json:"total_votes"`
}
