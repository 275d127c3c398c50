// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcache

// Set - membership with slot-batched expiry
//
// the engine's one-slot-per-key invariant already makes membership
// singular, so there is no payload beyond presence
type Set[K comparable] struct {
	s store[K, struct{}]
}

// NewSet - create an empty set
func NewSet[K comparable](ttl Duration, width Duration) *Set[K] {
	return &Set[K]{
		s: newStore[K, struct{}](ttl, width),
	}
}

// Add - insert a key, refreshing its TTL if already present
func (s *Set[K]) Add(key K, nowMs uint64) {
	s.s.set(key, struct{}{}, nowMs)
}

// Has - membership test, lazily expired members still count
func (s *Set[K]) Has(key K) bool {
	_, ok := s.s.get(key)
	return ok
}

// Remove - drop a key, absent keys are ignored
func (s *Set[K]) Remove(key K) {
	s.s.remove(key)
}

// GC - discard all slots older than the TTL cutoff derived from nowMs
func (s *Set[K]) GC(nowMs uint64) {
	s.s.gc(nowMs)
}

// Len - number of live members
func (s *Set[K]) Len() int {
	return s.s.size()
}
