package models

import "github.com/danielhkuo/livepoll/store"

// PollURLPrefix is prepended to a poll id to form the participant URL.
const PollURLPrefix = "/poll/"

// Request types

type CreatePollRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AddItemRequest struct {
	Text string `json:"text"`
}

type VoteRequest struct {
	ItemID string `json:"item_id"`
	UserID string `json:"user_id"`
}

// Response types

type CreatePollResponse struct {
	Success bool   `json:"success"`
	PollID  string `json:"poll_id"`
	PollURL string `json:"poll_url"`
}

type ItemView struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type AddItemResponse struct {
	Success bool     `json:"success"`
	Item    ItemView `json:"item"`
}

type VoteResponse struct {
	Success bool `json:"success"`
}

// Domain types are owned by the store; the API serves them as-is.

type (
	Poll    = store.Poll
	Results = store.Results
)

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
