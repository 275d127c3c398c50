// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcache

import (
	"sort"
)

// one time slice and the entries filed during it
type slot[K comparable, P any] struct {
	id      uint64
	entries map[K]P
}

// the shared slotted engine behind Map, Set and Counted
//
// slots is kept sorted ascending by id so that gc can drop the
// contiguous prefix of expired slots and stop at the first survivor
type store[K comparable, P any] struct {
	ttl   Duration
	width Duration
	slots []slot[K, P]
}

func newStore[K comparable, P any](ttl Duration, width Duration) store[K, P] {
	return store[K, P]{
		ttl:   ttl,
		width: width,
	}
}

// slot id for a wall-clock millisecond timestamp
//
// two timestamps share a slot iff they fall in the same half-open
// interval [n*width, (n+1)*width)
func (s *store[K, P]) slotOf(nowMs uint64) uint64 {
	return nowMs / s.width.Get()
}

// scan newest to oldest and return the first occurrence
//
// recently written keys are the likely reads, so starting from the
// youngest slot keeps the average probe depth short; freshness is NOT
// checked here, sweeping expired slots is entirely gc's job
func (s *store[K, P]) get(key K) (P, bool) {
	for i := len(s.slots) - 1; i >= 0; i-- {
		if payload, ok := s.slots[i].entries[key]; ok {
			return payload, true
		}
	}
	var none P
	return none, false
}

// delete the single occurrence of key, if any
//
// a key is present in at most one slot, so the scan stops at the
// first hit; an emptied slot stays until gc drops it
func (s *store[K, P]) remove(key K) {
	for i := len(s.slots) - 1; i >= 0; i-- {
		if _, ok := s.slots[i].entries[key]; ok {
			delete(s.slots[i].entries, key)
			return
		}
	}
}

// file key under the slot of nowMs, displacing any older occurrence
func (s *store[K, P]) set(key K, payload P, nowMs uint64) {
	// the remove keeps the one-slot-per-key invariant that get and
	// remove scans depend on
	s.remove(key)

	id := s.slotOf(nowMs)

	n := len(s.slots)
	if n > 0 && s.slots[n-1].id == id {
		// common case: time did not cross a slot boundary
		s.slots[n-1].entries[key] = payload
		return
	}
	if n == 0 || s.slots[n-1].id < id {
		s.slots = append(s.slots, slot[K, P]{id: id, entries: map[K]P{key: payload}})
		return
	}

	// a caller supplied an older timestamp than the newest slot;
	// keep the slice ordered by splicing into place
	i := sort.Search(n, func(i int) bool { return s.slots[i].id >= id })
	if i < n && s.slots[i].id == id {
		s.slots[i].entries[key] = payload
		return
	}
	s.slots = append(s.slots, slot[K, P]{})
	copy(s.slots[i+1:], s.slots[i:])
	s.slots[i] = slot[K, P]{id: id, entries: map[K]P{key: payload}}
}

// drop every slot that fell behind the TTL cutoff
//
// must be called at least once per slot width for the TTL to hold;
// between calls entries merely linger
func (s *store[K, P]) gc(nowMs uint64) {
	current := s.slotOf(nowMs)
	ttlSlots := s.ttl.Get() / s.width.Get()

	// before one full TTL has elapsed nothing can be old enough;
	// saturate instead of letting the subtraction wrap
	if current < ttlSlots {
		return
	}
	cutoff := current - ttlSlots

	n := 0
	for n < len(s.slots) && s.slots[n].id < cutoff {
		n++
	}
	if n == 0 {
		return
	}
	remaining := make([]slot[K, P], len(s.slots)-n)
	copy(remaining, s.slots[n:])
	s.slots = remaining
}

// total live entries across all slots
func (s *store[K, P]) size() int {
	n := 0
	for _, sl := range s.slots {
		n += len(sl.entries)
	}
	return n
}
