// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"time"
)

type cleaner struct{}

func (c *cleaner) Run(args interface{}, shutdown <-chan struct{}) {
	ticker := time.NewTicker(globalData.sweepInterval)
	for {
		select {
		case <-ticker.C:
			sweepExpired()
		case <-shutdown:
			ticker.Stop()
			return
		}
	}
}

func sweepExpired() {
	now := nowMilli()
	for _, p := range globalData.sweepers {
		p.sweep(now)
	}
}
