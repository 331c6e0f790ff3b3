// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authorizer

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/synthd/assetrecord"
	"github.com/bitmark-inc/synthd/capability"
	"github.com/bitmark-inc/synthd/counter"
	"github.com/bitmark-inc/synthd/fault"
)

// Oracle - read-only view of the debt positions backed by an asset
//
// owned by the position ledger; consulted only when an operation tries
// to restore the response method update authority
type Oracle interface {
	// HasOpenExposure - true while any open position is backed by the asset
	HasOpenExposure(assetId assetrecord.AssetId) bool
}

// accept and reject counts for one entry point
type tally struct {
	accepted counter.Counter
	rejected counter.Counter
}

// Tally - a snapshot of one entry point's counts
type Tally struct {
	Accepted uint64
	Rejected uint64
}

// globals for this module
type authorizerData struct {
	sync.RWMutex // to allow locking

	log    *logger.L
	gate   *capability.Gate
	oracle Oracle

	create          tally
	updateOptions   tally
	updateSynthetic tally

	// set once during initialise
	initialised bool
}

// global data
var globalData authorizerData

// Initialise - supply the capability gate and the exposure oracle
func Initialise(gate *capability.Gate, oracle Oracle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("authorizer")
	globalData.log.Info("starting…")

	globalData.gate = gate
	globalData.oracle = oracle
	globalData.create = tally{}
	globalData.updateOptions = tally{}
	globalData.updateSynthetic = tally{}

	globalData.initialised = true
	return nil
}

// Finalise - shut down the authorizer
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.gate = nil
	globalData.oracle = nil
	globalData.initialised = false
	return nil
}

// Tallies - accept and reject counts per entry point
func Tallies() map[string]Tally {
	return map[string]Tally{
		"asset-create":           snapshot(&globalData.create),
		"asset-update":           snapshot(&globalData.updateOptions),
		"asset-update-synthetic": snapshot(&globalData.updateSynthetic),
	}
}

func snapshot(t *tally) Tally {
	return Tally{
		Accepted: t.accepted.Uint64(),
		Rejected: t.rejected.Uint64(),
	}
}

// count the outcome and log the rejection reason
func (t *tally) record(log *logger.L, name string, err error) {
	if nil == err {
		t.accepted.Increment()
		return
	}
	t.rejected.Increment()
	log.Debugf("%s rejected: %s", name, err)
}
