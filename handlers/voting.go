// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/middleware"
	"github.com/danielhkuo/livepoll/models"
	"github.com/danielhkuo/livepoll/store"
)

type VotingHandler struct {
	store VoteStore
	cfg   cliparse.Config
}

func NewVotingHandler(st VoteStore, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: st, cfg: cfg}
}

// CastVote handles POST /api/polls/{id}/vote
// A second vote from the same user moves their vote to the new item
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}
	userID, err := cleanText("user_id", req.UserID, true, h.cfg.MaxTextLength)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.store.CastVote(pollID, userID, itemID)
	// Unknown polls are 404 on every route; only a bad item is "Vote failed"
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Vote failed")
		return
	}
	if err != nil {
		slog.Error("failed to cast vote", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Vote failed")
		return
	}

	slog.Info("vote cast", "poll_id", pollID, "item_id", itemID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{Success: true})
}
