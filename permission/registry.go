// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/synthd/assetrecord"
	"github.com/bitmark-inc/synthd/capability"
	"github.com/bitmark-inc/synthd/fault"
)

// bits common to every category
const commonPermissionBits = assetrecord.ChargeMarketFee |
	assetrecord.WhiteList |
	assetrecord.OverrideAuthority |
	assetrecord.TransferRestricted |
	assetrecord.DisableNewSupply

// structurally legal bits per category
type table struct {
	permissions assetrecord.PermissionMask
	flags       assetrecord.FlagMask
}

var categoryTables = map[assetrecord.Category]table{

	assetrecord.Basic: {
		permissions: commonPermissionBits |
			assetrecord.DisableBsrmUpdate,
		flags: commonPermissionBits,
	},

	// a prediction market's settlement policy must remain owner
	// controllable for market resolution, so the authority lock bit
	// is absent here and rejected as policy, not as an unknown bit
	assetrecord.Prediction: {
		permissions: commonPermissionBits |
			assetrecord.GlobalSettle,
		flags: commonPermissionBits,
	},

	assetrecord.Synthetic: {
		permissions: commonPermissionBits |
			assetrecord.DisableForceSettle |
			assetrecord.GlobalSettle |
			assetrecord.ExternalFeed |
			assetrecord.CouncilFeed |
			assetrecord.DisableMarginUpdate |
			assetrecord.DisableRatioUpdate |
			assetrecord.DisableBsrmUpdate,
		flags: commonPermissionBits |
			assetrecord.DisableForceSettle |
			assetrecord.ExternalFeed |
			assetrecord.CouncilFeed,
	},
}

// capability-gated permission bits
var gatedPermissionBits = map[assetrecord.PermissionMask]capability.Capability{
	assetrecord.CouncilFeed:         capability.FeedGovernance,
	assetrecord.DisableMarginUpdate: capability.FeedGovernance,
	assetrecord.DisableRatioUpdate:  capability.FeedGovernance,
	assetrecord.DisableBsrmUpdate:   capability.BlackSwanResponse,
}

// capability-gated flag bits
var gatedFlagBits = map[assetrecord.FlagMask]capability.Capability{
	assetrecord.CouncilFeed: capability.FeedGovernance,
}

// every category must have a complete table and every legal flag bit
// must also be a legal permission bit
func init() {
	for category := assetrecord.First; category <= assetrecord.Last; category += 1 {
		tbl, ok := categoryTables[category]
		if !ok {
			logger.Panicf("permission: missing table for category: %s", category)
		}
		if uint16(tbl.flags)&^uint16(tbl.permissions) != 0 {
			logger.Panicf("permission: category %s has flag bits outside its permission bits", category)
		}
		if tbl.flags.Holds(assetrecord.DisableBsrmUpdate) {
			logger.Panicf("permission: category %s lists the authority lock as a flag", category)
		}
	}
}

func tableFor(category assetrecord.Category) table {
	tbl, ok := categoryTables[category]
	if !ok {
		logger.Panicf("permission: no table for category: %d", uint64(category))
	}
	return tbl
}

// LegalPermissionBits - every permission bit settable for the
// category at the given time
func LegalPermissionBits(category assetrecord.Category, gate *capability.Gate, at time.Time) (assetrecord.PermissionMask, error) {
	if !category.IsValid() {
		return 0, fault.InvalidAssetCategory
	}
	mask := tableFor(category).permissions
	for bit, c := range gatedPermissionBits {
		if !gate.IsActive(c, at) {
			mask &^= bit
		}
	}
	return mask, nil
}

// LegalFlagBits - every flag bit settable for the category at the
// given time
func LegalFlagBits(category assetrecord.Category, gate *capability.Gate, at time.Time) (assetrecord.FlagMask, error) {
	if !category.IsValid() {
		return 0, fault.InvalidAssetCategory
	}
	mask := tableFor(category).flags
	for bit, c := range gatedFlagBits {
		if !gate.IsActive(c, at) {
			mask &^= bit
		}
	}
	return mask, nil
}

// PermissionOnlyBits - bits legal in the permission mask but never as flags
func PermissionOnlyBits(category assetrecord.Category) (assetrecord.PermissionMask, error) {
	if !category.IsValid() {
		return 0, fault.InvalidAssetCategory
	}
	tbl := tableFor(category)
	return tbl.permissions &^ assetrecord.PermissionMask(tbl.flags), nil
}

// CheckPermissionBits - validate every set bit for the category at
// the given time
//
// only bits being written should be passed: unchanged bits of an
// existing asset are deliberately never re-checked
func CheckPermissionBits(category assetrecord.Category, bits assetrecord.PermissionMask, gate *capability.Gate, at time.Time) error {
	if !category.IsValid() {
		return fault.InvalidAssetCategory
	}
	tbl := tableFor(category)
	for bit := assetrecord.PermissionMask(1); 0 != bit; bit <<= 1 {
		if 0 == bits&bit {
			continue
		}
		if 0 == tbl.permissions&bit {
			if assetrecord.DisableBsrmUpdate == bit && assetrecord.Prediction == category {
				return fault.PredictionMarketCannotLockResponseMethod
			}
			return fault.IllegalPermissionBits
		}
		if c, ok := gatedPermissionBits[bit]; ok && !gate.IsActive(c, at) {
			return fault.PermissionBitNotYetActive
		}
	}
	return nil
}

// CheckFlagBits - validate every set bit for the category at the
// given time
//
// only bits being written should be passed, as for permission bits
func CheckFlagBits(category assetrecord.Category, bits assetrecord.FlagMask, gate *capability.Gate, at time.Time) error {
	if !category.IsValid() {
		return fault.InvalidAssetCategory
	}
	tbl := tableFor(category)
	for bit := assetrecord.FlagMask(1); 0 != bit; bit <<= 1 {
		if 0 == bits&bit {
			continue
		}
		if assetrecord.DisableBsrmUpdate == bit {
			// the authority lock is permission-only everywhere
			return fault.ResponseMethodAuthorityIsNotAFlag
		}
		if 0 == tbl.flags&bit {
			return fault.IllegalFlagBits
		}
		if c, ok := gatedFlagBits[bit]; ok && !gate.IsActive(c, at) {
			return fault.FlagBitNotYetActive
		}
	}
	return nil
}
