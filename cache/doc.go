// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache maintains the node's ephemeral memory pools
//
//	***** Data Structure *****
//
//	Pool            Kind      Key                   Value                    TTL    Slot
//	|___ PendingTx  map       tx digest (hex)       submission record        72h    1h
//	|___ SeenTx     set       tx digest (hex)       -                        24h    30m
//	|___ PeerRate   counted   origin identifier     recent submission count  1m     5s
//	|___ TestA      map       test only             test only                250ms  50ms
//	|___ TestB      map       test only             test only                1h     5m
//
//	***** Purpose *****
//
//	PendingTx:
//	  submissions accepted but not yet settled, indexed by digest so
//	  that a resubmission can be distinguished from a new transaction
//
//	SeenTx:
//	  digests seen recently, kept longer than PendingTx so that a
//	  transaction completed and resubmitted is still rejected
//
//	PeerRate:
//	  decaying per-origin submission counts used for throttling
//
// every pool is a slot-batched gcache store wrapped in a mutex; a
// background cleaner sweeps all pools once per smallest slot width,
// which is what bounds each pool's memory
package cache
