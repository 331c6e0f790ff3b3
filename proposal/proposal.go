// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposal

import (
	"time"

	"github.com/bitmark-inc/synthd/assetrecord"
	"github.com/bitmark-inc/synthd/authorizer"
)

// Evaluate - decide whether an operation may be wrapped in a proposal
//
// now must be the ledger's current time, never the proposal's intended
// execution time; the decision is the one direct submission would get
func Evaluate(operation assetrecord.Operation, current *assetrecord.Asset, now time.Time) (*assetrecord.Asset, error) {
	return authorizer.Authorize(operation, current, now)
}
