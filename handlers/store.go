// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/livepoll/store"
)

// VoteStore is the subset of *store.Store the handlers use.
type VoteStore interface {
	CreatePoll(title, description string) store.Poll
	GetPoll(pollID string) (store.Poll, error)
	AddItem(pollID, text string) (store.Item, error)
	CastVote(pollID, userID, itemID string) error
	GetResults(pollID string) (store.Results, error)
}

var _ VoteStore = (*store.Store)(nil)

// cleanText trims s and checks it against the configured limit.
func cleanText(field, s string, required bool, maxLen int) (string, error) {
	s = strings.TrimSpace(s)
	if required && s == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", fmt.Errorf("%s must be at most %d characters", field, maxLen)
	}
	return s, nil
}
