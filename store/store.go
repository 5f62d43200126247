// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/danielhkuo/livepoll/ids"
)

// ErrNotFound is the only kind of error the store reports.
var ErrNotFound = errors.New("not found")

// Errors returned for an unknown poll or item. Both wrap ErrNotFound.
var (
	ErrPollNotFound = errors.WithMessage(ErrNotFound, "poll")
	ErrItemNotFound = errors.WithMessage(ErrNotFound, "item")
)

// maxIDAttempts bounds retries when the generator returns an id already in use.
const maxIDAttempts = 16

// Store holds every poll in process memory.
//
// The registry lock only guards the polls map. Each poll carries its own
// lock, held for the whole of any operation on that poll, so operations on
// one poll are linearizable and never wait on another poll.
type Store struct {
	mu    sync.RWMutex
	polls map[string]*poll

	ids ids.Generator
	now func() time.Time
}

type poll struct {
	mu sync.RWMutex

	id          string
	title       string
	description string
	createdAt   time.Time
	active      bool

	items       []Item
	itemIndex   map[string]int    // item id -> position in items
	votesByUser map[string]string // user id -> item id
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator sets the source of poll and item ids.
func WithIDGenerator(g ids.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock overrides time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store. Ids default to 8 hex characters of a UUID.
func New(opts ...Option) *Store {
	s := &Store{
		polls: make(map[string]*poll),
		ids:   &ids.UUIDGenerator{Length: ids.DefaultLength},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePoll registers a new active poll with no items and no votes.
func (s *Store) CreatePoll(title, description string) Poll {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.freshID(func(id string) bool {
		_, taken := s.polls[id]
		return taken
	})

	p := &poll{
		id:          id,
		title:       title,
		description: description,
		createdAt:   s.now(),
		active:      true,
		items:       []Item{},
		itemIndex:   make(map[string]int),
		votesByUser: make(map[string]string),
	}
	s.polls[id] = p

	return p.snapshot()
}

// GetPoll returns a copy of the poll and its items.
func (s *Store) GetPoll(pollID string) (Poll, error) {
	p, err := s.lookup(pollID)
	if err != nil {
		return Poll{}, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.snapshot(), nil
}

// AddItem appends a new item with zero votes to the poll.
func (s *Store) AddItem(pollID, text string) (Item, error) {
	p, err := s.lookup(pollID)
	if err != nil {
		return Item{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id := s.freshID(func(id string) bool {
		_, taken := p.itemIndex[id]
		return taken
	})

	item := Item{
		ID:        id,
		Text:      text,
		CreatedAt: s.now(),
	}
	p.itemIndex[id] = len(p.items)
	p.items = append(p.items, item)

	return item, nil
}

// CastVote records userID's vote for itemID, moving any earlier vote the
// user holds in the same poll. Voting twice for the same item changes nothing.
func (s *Store) CastVote(pollID, userID, itemID string) error {
	p, err := s.lookup(pollID)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.itemIndex[itemID]
	if !ok {
		return errors.Wrapf(ErrItemNotFound, "item %q in poll %q", itemID, pollID)
	}

	if prevID, voted := p.votesByUser[userID]; voted {
		p.items[p.itemIndex[prevID]].Votes--
	}
	p.votesByUser[userID] = itemID
	p.items[idx].Votes++

	return nil
}

// GetResults returns a consistent tally of the poll.
func (s *Store) GetResults(pollID string) (Results, error) {
	p, err := s.lookup(pollID)
	if err != nil {
		return Results{}, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	items := make([]ItemResult, len(p.items))
	for i, it := range p.items {
		items[i] = ItemResult{ID: it.ID, Text: it.Text, Votes: it.Votes}
	}

	return Results{
		Poll: PollInfo{
			ID:          p.id,
			Title:       p.title,
			Description: p.description,
			IsActive:    p.active,
		},
		Items:      items,
		TotalVotes: len(p.votesByUser),
	}, nil
}

func (s *Store) lookup(pollID string) (*poll, error) {
	s.mu.RLock()
	p, ok := s.polls[pollID]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrPollNotFound, "poll %q", pollID)
	}
	return p, nil
}

// freshID draws ids until taken reports one as unused. The caller holds the
// lock that guards the namespace taken inspects.
func (s *Store) freshID(taken func(string) bool) string {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NewID()
		if !taken(id) {
			return id
		}
	}
	panic(fmt.Sprintf("store: id generator returned %d ids already in use", maxIDAttempts))
}

// snapshot copies the poll. The caller holds p.mu.
func (p *poll) snapshot() Poll {
	items := make([]Item, len(p.items))
	copy(items, p.items)

	return Poll{
		ID:          p.id,
		Title:       p.title,
		Description: p.description,
		CreatedAt:   p.createdAt,
		IsActive:    p.active,
		Items:       items,
	}
}
