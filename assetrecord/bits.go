// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

// PermissionMask - bits the issuer currently retains the right to alter
type PermissionMask uint16

// FlagMask - bits reflecting the asset's current active state
//
// a flag may only be set while the issuer holds the matching
// permission bit; some bits are permission-only and are never legal
// as flags
type FlagMask uint16

// individual bits
//
// the values are stored in the database and appear in operations so
// they must never be renumbered; untyped so they combine into either
// mask type
const (
	ChargeMarketFee     = 0x0001 // market trades pay the market fee
	WhiteList           = 0x0002 // holders must be whitelisted
	OverrideAuthority   = 0x0004 // issuer may transfer back from any holder
	TransferRestricted  = 0x0008 // transfers need issuer approval
	DisableNewSupply    = 0x0010 // no further issuance
	DisableForceSettle  = 0x0020 // holders may not force-settle
	GlobalSettle        = 0x0040 // issuer may trigger global settlement (permission-only)
	ExternalFeed        = 0x0080 // price comes from appointed feeders
	CouncilFeed         = 0x0100 // price comes from the council feed
	DisableMarginUpdate = 0x0200 // margin requirement is frozen (permission-only)
	DisableRatioUpdate  = 0x0400 // target ratio is frozen (permission-only)
	DisableBsrmUpdate   = 0x0800 // response method update right is given up (permission-only)
)

// BsrmUpdateLocked - true when the response method authority lock bit is set
func (mask PermissionMask) BsrmUpdateLocked() bool {
	return 0 != mask&DisableBsrmUpdate
}

// Holds - true when every given bit is present in the mask
func (mask PermissionMask) Holds(bits PermissionMask) bool {
	return bits == mask&bits
}

// Holds - true when every given bit is present in the mask
func (mask FlagMask) Holds(bits FlagMask) bool {
	return bits == mask&bits
}
