// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the in-memory vote store behind the livepoll API.

# Operations

	st := store.New()
	p := st.CreatePoll("Lunch", "Where to eat")
	item, err := st.AddItem(p.ID, "Tacos")
	err = st.CastVote(p.ID, "u1", item.ID)
	results, err := st.GetResults(p.ID)

# Votes

Each user holds at most one vote per poll. Voting again moves the vote: the
previous item loses one vote and the new item gains one in a single step, so
every item's count always equals the number of users mapped to it.

# Errors

Unknown polls and items are reported as ErrPollNotFound and ErrItemNotFound,
both of which match ErrNotFound:

	if errors.Is(err, store.ErrNotFound) {
		// 404 / "vote failed"
	}

A failed operation leaves the store unchanged.

# Concurrency

All methods are safe for concurrent use. Each poll has its own lock, held for
the full duration of an operation on it; readers never observe a half-applied
vote.
*/
package store
