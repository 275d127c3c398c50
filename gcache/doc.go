// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gcache - time-sliced garbage collected in-memory stores
//
//	***** Data Structure *****
//
//	store
//	|___ slot n    keyed entries inserted during [n*w, (n+1)*w)
//	|___ slot n+1  keyed entries inserted during [(n+1)*w, (n+2)*w)
//	|___ …
//
// where w is the slot width in milliseconds.  Slots are kept in
// ascending slot id order and a whole slot is discarded once it falls
// behind the TTL cutoff, so expiry costs one map drop per slot instead
// of a timer or deadline per entry.
//
//	***** Variants *****
//
//	Map      one value per key
//	Set      membership only
//	Counted  decaying occurrence count per key
//
// A key occurs in at most one slot at any time: a write first removes
// any older occurrence, then files the key under the slot of the
// supplied timestamp.  Reads scan slots newest first and do NOT check
// the TTL; an entry whose slot has not yet been swept is still
// returned.  Callers wanting hard expiry must run GC at least once per
// slot width.
//
// No operation reads the clock.  Every time-dependent call takes the
// current wall-clock time in milliseconds, which keeps the stores
// deterministic under test.
//
// The stores are not internally synchronised; see package cache for
// the locked pools used by the node.
package gcache
