// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/middleware"
	"github.com/danielhkuo/livepoll/store"
)

const (
	streamWriteWait    = 10 * time.Second
	streamPingInterval = 30 * time.Second
	streamReadLimit    = 512
)

type ResultsHandler struct {
	store    VoteStore
	cfg      cliparse.Config
	upgrader websocket.Upgrader
}

func NewResultsHandler(st VoteStore, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{
		store: st,
		cfg:   cfg,
		upgrader: websocket.Upgrader{
			// CORS already admits any origin for the JSON API
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// GetResults handles GET /api/polls/{id}/results
// Polled by the participant page for live tallies
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	results, err := h.store.GetResults(pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to get results", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// StreamResults handles GET /api/polls/{id}/results/stream
// Upgrades to a WebSocket and pushes the results JSON whenever it changes
func (h *ResultsHandler) StreamResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	results, err := h.store.GetResults(pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to get results", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get results")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		slog.Warn("websocket upgrade failed", "poll_id", pollID, "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Clients never send anything meaningful; reading surfaces close frames
	// and disconnects.
	conn.SetReadLimit(streamReadLimit)
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	slog.Info("results stream opened", "poll_id", pollID)
	defer slog.Info("results stream closed", "poll_id", pollID)

	var last []byte
	push := func(res store.Results) error {
		payload, err := json.Marshal(res)
		if err != nil {
			return err
		}
		if bytes.Equal(payload, last) {
			return nil
		}
		last = payload
		conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		return conn.WriteMessage(websocket.TextMessage, payload)
	}

	if err := push(results); err != nil {
		return
	}

	ticker := time.NewTicker(h.cfg.StreamInterval)
	defer ticker.Stop()
	ping := time.NewTicker(streamPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(streamWriteWait))
			return
		case <-ticker.C:
			res, err := h.store.GetResults(pollID)
			if err != nil {
				slog.Error("failed to get results", "poll_id", pollID, "error", err)
				return
			}
			if err := push(res); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
