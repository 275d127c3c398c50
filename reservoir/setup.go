// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/strata-network/stratad/cache"
	"github.com/strata-network/stratad/counter"
	"github.com/strata-network/stratad/fault"
	"github.com/strata-network/stratad/mode"
)

// Configuration - reservoir settings from the configuration file
type Configuration struct {
	// maximum submissions per origin inside the PeerRate decay
	// window, zero disables throttling
	MaximumRate uint64 `gluamapper:"maximum_rate"`
}

// TxEntry - one pending submission
type TxEntry struct {
	Digest     string
	Packed     []byte
	Origin     string
	ReceivedAt time.Time
}

// globals
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	maximumRate uint64

	accepted  counter.Counter
	duplicate counter.Counter
	throttled counter.Counter

	// set once during initialise
	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - create the reservoir
//
// the cache pools must already be initialised
func Initialise(cfg Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("reservoir")
	globalData.log.Info("starting…")

	globalData.maximumRate = cfg.MaximumRate
	globalData.accepted = 0
	globalData.duplicate = 0
	globalData.throttled = 0

	globalData.initialised = true

	return nil
}

// Finalise - shut down the reservoir
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// Submit - accept a transaction for later settlement
//
// rejects duplicates for the lifetime of the seen pool and throttles
// over-eager origins; an accepted entry stays until collected,
// deleted or aged out of the pending pool
//
// the whole intake runs under the reservoir lock so that two
// submissions of one digest cannot both pass the seen check
func Submit(digest string, packed []byte, origin string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if mode.IsNot(mode.Normal) {
		return fault.ErrNotAvailable
	}

	if globalData.maximumRate > 0 && origin != "" {
		if n := cache.Pool.PeerRate.Touch(origin); n > globalData.maximumRate {
			globalData.throttled.Increment()
			globalData.log.Warnf("throttled origin: %s  recent: %d", origin, n)
			return fault.ErrRateLimited
		}
	}

	if cache.Pool.SeenTx.Has(digest) {
		globalData.duplicate.Increment()
		globalData.log.Debugf("duplicate submission: %s", digest)
		return fault.ErrTransactionAlreadyExists
	}

	cache.Pool.PendingTx.Put(digest, &TxEntry{
		Digest:     digest,
		Packed:     packed,
		Origin:     origin,
		ReceivedAt: time.Now(),
	})
	cache.Pool.SeenTx.Add(digest)

	globalData.accepted.Increment()
	globalData.log.Infof("accepted: %s from: %s", digest, origin)

	return nil
}

// Has - is a submission still pending
func Has(digest string) bool {
	_, ok := cache.Pool.PendingTx.Get(digest)
	return ok
}

// Seen - was a digest submitted recently, pending or not
func Seen(digest string) bool {
	return cache.Pool.SeenTx.Has(digest)
}

// Fetch - retrieve a pending submission
func Fetch(digest string) (*TxEntry, error) {
	item, ok := cache.Pool.PendingTx.Get(digest)
	if !ok {
		return nil, fault.ErrTransactionNotFound
	}
	entry, ok := item.(*TxEntry)
	if !ok {
		// only Submit writes this pool, so any other payload type
		// means memory corruption or a broken caller
		fault.Criticalf("pending pool entry for: %s has unexpected type: %T", digest, item)
		fault.Panic("invalid pending pool entry")
	}
	return entry, nil
}

// Delete - drop a pending submission
//
// the digest stays in the seen pool, so a completed transaction
// cannot be immediately resubmitted
func Delete(digest string) {
	cache.Pool.PendingTx.Delete(digest)
}

// PendingCount - number of submissions awaiting settlement
func PendingCount() int {
	return cache.Pool.PendingTx.Size()
}

// ReadCounters - accepted, duplicate and throttled totals
func ReadCounters() (uint64, uint64, uint64) {
	return globalData.accepted.Uint64(),
		globalData.duplicate.Uint64(),
		globalData.throttled.Uint64()
}
