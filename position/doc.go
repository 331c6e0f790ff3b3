// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package position - the ledger of open debt positions
//
// Each record is one open position: keyed by asset id and position
// number, holding the outstanding debt amount.  The package answers
// the single question the policy engine asks, whether any open
// position is backed by an asset, and tracks amounts so partial
// closes work.
//
// Opening, reducing and closing positions is driven by the settlement
// execution engine; nothing here decides whether a position should
// exist.
package position
