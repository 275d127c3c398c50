// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcache

// Counted - per-key occurrence count with slot-batched decay
//
// answers "how many times has this key been seen recently" where
// recently means within the TTL of the last touch; the whole count
// decays at once when its slot is swept
type Counted[K comparable] struct {
	s store[K, uint64]
}

// NewCounted - create an empty counted set
func NewCounted[K comparable](ttl Duration, width Duration) *Counted[K] {
	return &Counted[K]{
		s: newStore[K, uint64](ttl, width),
	}
}

// Touch - record one more occurrence of key and return the new count
//
// an existing count is carried forward into the slot of nowMs, so
// every touch refreshes the whole count's TTL
func (c *Counted[K]) Touch(key K, nowMs uint64) uint64 {
	n, _ := c.s.get(key)
	n++
	c.s.set(key, n, nowMs)
	return n
}

// Count - current occurrence count, zero when absent
func (c *Counted[K]) Count(key K) uint64 {
	n, _ := c.s.get(key)
	return n
}

// Remove - forget a key entirely, absent keys are ignored
func (c *Counted[K]) Remove(key K) {
	c.s.remove(key)
}

// GC - discard all slots older than the TTL cutoff derived from nowMs
func (c *Counted[K]) GC(nowMs uint64) {
	c.s.gc(nowMs)
}

// Len - number of keys with a live count
func (c *Counted[K]) Len() int {
	return c.s.size()
}
