// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcache

import (
	"github.com/strata-network/stratad/fault"
)

// Duration - a strictly positive count of milliseconds
//
// used both as an entry TTL and as a slot width; keeping zero
// unrepresentable means the slot division can never fault
type Duration struct {
	ms uint64
}

// NewDuration - create a Duration from a millisecond count
//
// fails with fault.ErrInvalidDuration when ms is zero
func NewDuration(ms uint64) (Duration, error) {
	if ms == 0 {
		return Duration{}, fault.ErrInvalidDuration
	}
	return Duration{ms: ms}, nil
}

// Get - the millisecond count, always non-zero
func (d Duration) Get() uint64 {
	return d.ms
}
