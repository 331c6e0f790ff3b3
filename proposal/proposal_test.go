// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proposal_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/synthd/assetrecord"
	"github.com/bitmark-inc/synthd/authorizer"
	"github.com/bitmark-inc/synthd/authorizer/mocks"
	"github.com/bitmark-inc/synthd/bsrm"
	"github.com/bitmark-inc/synthd/capability"
	"github.com/bitmark-inc/synthd/fault"
	"github.com/bitmark-inc/synthd/fixtures"
	"github.com/bitmark-inc/synthd/proposal"
)

var (
	feedEpoch = time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	bsrmEpoch = time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockOracle) {
	fixtures.SetupTestLogger()

	gate, err := capability.NewGateWithSchedule(map[capability.Capability]time.Time{
		capability.FeedGovernance:    feedEpoch,
		capability.BlackSwanResponse: bsrmEpoch,
	})
	if nil != err {
		t.Fatalf("gate create error: %s", err)
	}

	ctl := gomock.NewController(t)
	oracle := mocks.NewMockOracle(ctl)

	if err := authorizer.Initialise(gate, oracle); nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	return ctl, oracle
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	_ = authorizer.Finalise()
	fixtures.TeardownTestLogger()
}

func makeStoredAsset(locked bool) *assetrecord.Asset {
	method := bsrm.NoSettlement
	var permissions assetrecord.PermissionMask = assetrecord.ChargeMarketFee |
		assetrecord.ExternalFeed | assetrecord.DisableForceSettle
	if locked {
		permissions |= assetrecord.DisableBsrmUpdate
	}
	return &assetrecord.Asset{
		Symbol:    "SYNUSD",
		Precision: 4,
		Category:  assetrecord.Synthetic,
		Options: assetrecord.AssetOptions{
			MaxSupply:        1000000,
			MarketFeePercent: 100,
			Flags:            assetrecord.ChargeMarketFee,
			Permissions:      permissions,
		},
		Synthetic: &assetrecord.SyntheticOptions{
			MinimumFeeds:    3,
			FeedLifetime:    86400,
			SettlementDelay: 86400,
			ResponseMethod:  &method,
		},
	}
}

// proposing and submitting give the same answer for every operation
func TestProposalDirectParity(t *testing.T) {
	ctl, oracle := setup(t)
	defer teardown(ctl)

	unlocked := makeStoredAsset(false)
	locked := makeStoredAsset(true)
	method := bsrm.IndividualSettlementToOrder

	restore := &assetrecord.UpdateAsset{
		AssetId: locked.AssetId(),
		Options: locked.Options,
	}
	restore.Options.Permissions &^= assetrecord.DisableBsrmUpdate

	gatedCreate := &assetrecord.CreateAsset{
		Symbol:    "NEWUSD",
		Precision: 4,
		Category:  assetrecord.Synthetic,
		Options: assetrecord.AssetOptions{
			MaxSupply:   1000000,
			Permissions: assetrecord.DisableBsrmUpdate,
		},
		Synthetic: &assetrecord.SyntheticOptions{
			MinimumFeeds:    1,
			FeedLifetime:    3600,
			SettlementDelay: 3600,
		},
	}

	testData := []struct {
		name      string
		operation assetrecord.Operation
		current   *assetrecord.Asset
		at        time.Time
	}{
		{"gated create before epoch", gatedCreate, nil, bsrmEpoch.Add(-time.Second)},
		{"gated create after epoch", gatedCreate, nil, bsrmEpoch},
		{"method change without authority", &assetrecord.UpdateSyntheticAsset{
			AssetId: locked.AssetId(),
			Options: assetrecord.SyntheticOptions{
				MinimumFeeds:    3,
				FeedLifetime:    86400,
				SettlementDelay: 86400,
				ResponseMethod:  &method,
			},
		}, locked, bsrmEpoch.Add(time.Hour)},
		{"method change with authority", &assetrecord.UpdateSyntheticAsset{
			AssetId: unlocked.AssetId(),
			Options: assetrecord.SyntheticOptions{
				MinimumFeeds:    3,
				FeedLifetime:    86400,
				SettlementDelay: 86400,
				ResponseMethod:  &method,
			},
		}, unlocked, bsrmEpoch.Add(time.Hour)},
		{"restore while exposed", restore, locked, bsrmEpoch.Add(time.Hour)},
	}

	// both paths read the exposure for the restore case
	oracle.EXPECT().HasOpenExposure(locked.AssetId()).Return(true).Times(2)

	for i, item := range testData {
		direct, directErr := authorizer.Authorize(item.operation, item.current, item.at)
		proposed, proposedErr := proposal.Evaluate(item.operation, item.current, item.at)

		if directErr != proposedErr {
			t.Errorf("%d: %s: direct: %v  proposed: %v", i, item.name, directErr, proposedErr)
		}
		assert.Equal(t, direct, proposed, "%d: %s: state differs", i, item.name)
	}
}

// a proposal created before the epoch stays rejected even though its
// execution would land after activation
func TestProposalUsesCurrentTime(t *testing.T) {
	ctl, _ := setup(t)
	defer teardown(ctl)

	op := &assetrecord.CreateAsset{
		Symbol:    "NEWUSD",
		Precision: 4,
		Category:  assetrecord.Synthetic,
		Options: assetrecord.AssetOptions{
			MaxSupply:   1000000,
			Permissions: assetrecord.DisableBsrmUpdate,
		},
		Synthetic: &assetrecord.SyntheticOptions{
			MinimumFeeds:    1,
			FeedLifetime:    3600,
			SettlementDelay: 3600,
		},
	}

	_, err := proposal.Evaluate(op, nil, bsrmEpoch.Add(-time.Second))
	assert.Equal(t, fault.PermissionBitNotYetActive, err, "proposal before epoch")

	asset, err := proposal.Evaluate(op, nil, bsrmEpoch)
	assert.Nil(t, err, "proposal at epoch")
	assert.False(t, asset.CanOwnerUpdateBsrm(), "lock bit not applied")
}
