// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcache

// Map - one value per key with slot-batched expiry
type Map[K comparable, V any] struct {
	s store[K, V]
}

// NewMap - create an empty map
//
// ttl is how long an entry survives after its last Set; width is the
// slot granularity, entries written within the same width share an
// expiry
func NewMap[K comparable, V any](ttl Duration, width Duration) *Map[K, V] {
	return &Map[K, V]{
		s: newStore[K, V](ttl, width),
	}
}

// Set - store or overwrite the value for a key
//
// the key's TTL restarts from nowMs
func (m *Map[K, V]) Set(key K, value V, nowMs uint64) {
	m.s.set(key, value, nowMs)
}

// Get - fetch the value for a key
//
// an expired entry is still returned until GC sweeps its slot
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.s.get(key)
}

// Remove - drop a key, absent keys are ignored
func (m *Map[K, V]) Remove(key K) {
	m.s.remove(key)
}

// GC - discard all slots older than the TTL cutoff derived from nowMs
func (m *Map[K, V]) GC(nowMs uint64) {
	m.s.gc(nowMs)
}

// Len - number of live entries
func (m *Map[K, V]) Len() int {
	return m.s.size()
}
