// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - intake for transactions awaiting settlement
//
// a submission is identified by its digest; the reservoir keeps the
// packed transaction until the settlement logic collects it, rejects
// resubmissions for as long as the digest stays in the seen pool and
// throttles origins that submit faster than the configured rate
//
// all transaction state lives in the cache pools, so an abandoned
// submission simply ages out; nothing here is persistent
package reservoir
