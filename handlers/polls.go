// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/middleware"
	"github.com/danielhkuo/livepoll/models"
	"github.com/danielhkuo/livepoll/store"
)

type PollHandler struct {
	store VoteStore
	cfg   cliparse.Config
}

func NewPollHandler(st VoteStore, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: st, cfg: cfg}
}

// CreatePoll handles POST /api/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	title, err := cleanText("title", req.Title, true, h.cfg.MaxTextLength)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	description, err := cleanText("description", req.Description, false, h.cfg.MaxTextLength)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	poll := h.store.CreatePoll(title, description)

	slog.Info("poll created", "poll_id", poll.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		Success: true,
		PollID:  poll.ID,
		PollURL: models.PollURLPrefix + poll.ID,
	})
}

// GetPoll handles GET /api/polls/{id}
// Returns poll details and items for the participant page
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.store.GetPoll(pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to get poll", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// AddItem handles POST /api/polls/{id}/items
func (h *PollHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.AddItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text, err := cleanText("text", req.Text, true, h.cfg.MaxTextLength)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.store.AddItem(pollID, text)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to add item", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	slog.Info("item added", "poll_id", pollID, "item_id", item.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddItemResponse{
		Success: true,
		Item: models.ItemView{
			ID:    item.ID,
			Text:  item.Text,
			Votes: item.Votes,
		},
	})
}
