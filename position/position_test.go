// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package position_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/synthd/assetrecord"
	"github.com/bitmark-inc/synthd/authorizer"
	"github.com/bitmark-inc/synthd/capability"
	"github.com/bitmark-inc/synthd/fault"
	"github.com/bitmark-inc/synthd/fixtures"
	"github.com/bitmark-inc/synthd/position"
	"github.com/bitmark-inc/synthd/storage"
)

const databaseDirectory = "testing-position"

func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	_ = os.RemoveAll(databaseDirectory + ".leveldb")
	if err := storage.Initialise(databaseDirectory, storage.ReadWrite); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if err := position.Initialise(); nil != err {
		t.Fatalf("position initialise error: %s", err)
	}
}

func teardown() {
	_ = position.Finalise()
	storage.Finalise()
	_ = os.RemoveAll(databaseDirectory + ".leveldb")
	fixtures.TeardownTestLogger()
}

func TestOpenCloseDebt(t *testing.T) {
	setup(t)
	defer teardown()

	ledger := position.Ledger{}
	assetId := assetrecord.NewAssetId("SYNUSD")
	otherId := assetrecord.NewAssetId("OTHER")

	assert.False(t, ledger.HasOpenExposure(assetId), "unexpected exposure")
	assert.Equal(t, uint64(0), position.TotalDebt(assetId), "unexpected debt")

	if err := position.Open(assetId, 1, 1000); nil != err {
		t.Fatalf("open error: %s", err)
	}
	if err := position.Open(assetId, 2, 500); nil != err {
		t.Fatalf("open error: %s", err)
	}

	assert.True(t, ledger.HasOpenExposure(assetId), "missing exposure")
	assert.False(t, ledger.HasOpenExposure(otherId), "exposure bled across assets")
	assert.Equal(t, uint64(1500), position.TotalDebt(assetId), "wrong total")

	debt, err := position.Debt(assetId, 1)
	assert.Nil(t, err, "debt error")
	assert.Equal(t, uint64(1000), debt, "wrong debt")

	// partial close keeps the position open
	if err := position.Close(assetId, 1, 400); nil != err {
		t.Fatalf("partial close error: %s", err)
	}
	debt, err = position.Debt(assetId, 1)
	assert.Nil(t, err, "debt error")
	assert.Equal(t, uint64(600), debt, "wrong reduced debt")
	assert.Equal(t, uint64(1100), position.TotalDebt(assetId), "wrong total after reduce")

	// paying more than owed is refused
	err = position.Close(assetId, 1, 601)
	assert.Equal(t, fault.PositionUnderflow, err, "underflow accepted")

	// full closes remove the exposure
	if err := position.Close(assetId, 1, 600); nil != err {
		t.Fatalf("close error: %s", err)
	}
	if err := position.Close(assetId, 2, 500); nil != err {
		t.Fatalf("close error: %s", err)
	}
	_, err = position.Debt(assetId, 1)
	assert.Equal(t, fault.PositionDoesNotExist, err, "closed position readable")
	assert.False(t, ledger.HasOpenExposure(assetId), "exposure outlived positions")
}

func TestOpenErrors(t *testing.T) {
	setup(t)
	defer teardown()

	assetId := assetrecord.NewAssetId("SYNUSD")

	err := position.Open(assetId, 1, 0)
	assert.Equal(t, fault.InvalidOperation, err, "zero debt accepted")

	if err := position.Open(assetId, 1, 100); nil != err {
		t.Fatalf("open error: %s", err)
	}
	err = position.Open(assetId, 1, 100)
	assert.Equal(t, fault.PositionAlreadyExists, err, "duplicate accepted")

	err = position.Close(assetId, 9, 1)
	assert.Equal(t, fault.PositionDoesNotExist, err, "missing position closed")
}

// the stored positions drive the authority ratchet end to end
func TestLedgerDrivesRatchet(t *testing.T) {
	setup(t)
	defer teardown()

	gate, err := capability.NewGate("local")
	if nil != err {
		t.Fatalf("gate error: %s", err)
	}
	if err := authorizer.Initialise(gate, position.Ledger{}); nil != err {
		t.Fatalf("authorizer initialise error: %s", err)
	}
	defer func() { _ = authorizer.Finalise() }()

	now := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)

	asset, err := authorizer.Create(&assetrecord.CreateAsset{
		Symbol:    "SYNUSD",
		Precision: 4,
		Category:  assetrecord.Synthetic,
		Options: assetrecord.AssetOptions{
			MaxSupply:   1000000,
			Permissions: assetrecord.ExternalFeed,
		},
		Synthetic: &assetrecord.SyntheticOptions{
			MinimumFeeds:    1,
			FeedLifetime:    3600,
			SettlementDelay: 3600,
		},
	}, now)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	assetId := asset.AssetId()

	// give the authority up
	revoke := &assetrecord.UpdateAsset{AssetId: assetId, Options: asset.Options}
	revoke.Options.Permissions |= assetrecord.DisableBsrmUpdate
	asset, err = authorizer.UpdateOptions(asset, revoke, now)
	if nil != err {
		t.Fatalf("revoke error: %s", err)
	}

	// blocked while a position is open
	if err := position.Open(assetId, 1, 1000); nil != err {
		t.Fatalf("open error: %s", err)
	}
	restore := &assetrecord.UpdateAsset{AssetId: assetId, Options: asset.Options}
	restore.Options.Permissions &^= assetrecord.DisableBsrmUpdate
	_, err = authorizer.UpdateOptions(asset, restore, now)
	assert.Equal(t, fault.ResponseMethodAuthorityLocked, err, "restore while exposed")

	// unblocked once the debt is repaid
	if err := position.Close(assetId, 1, 1000); nil != err {
		t.Fatalf("close error: %s", err)
	}
	asset, err = authorizer.UpdateOptions(asset, restore, now)
	assert.Nil(t, err, "restore after repayment")
	assert.True(t, asset.CanOwnerUpdateBsrm(), "authority not restored")
}
