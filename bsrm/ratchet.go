// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bsrm

import (
	"github.com/bitmark-inc/synthd/fault"
)

// AuthorityMask - the part of a permission mask the ratchet reads
//
// implemented by assetrecord.PermissionMask
type AuthorityMask interface {
	// BsrmUpdateLocked - true when the update-authority lock bit is set
	BsrmUpdateLocked() bool
}

// Transition - classification of an authority lock bit change
type Transition int

// the three possible transitions of the lock bit
const (
	Unchanged Transition = iota // bit keeps its value
	Revoke    Transition = iota // bit set: issuer gives the right up
	Restore   Transition = iota // bit cleared: issuer takes the right back
)

// ClassifyTransition - determine the transition between two masks
func ClassifyTransition(oldMask AuthorityMask, newMask AuthorityMask) Transition {
	oldLocked := oldMask.BsrmUpdateLocked()
	newLocked := newMask.BsrmUpdateLocked()
	switch {
	case oldLocked == newLocked:
		return Unchanged
	case newLocked:
		return Revoke
	default:
		return Restore
	}
}

// CanOwnerUpdate - true while the issuer holds the update right
//
// a pure read of the current mask; exposure plays no part here
func CanOwnerUpdate(permissions AuthorityMask) bool {
	return !permissions.BsrmUpdateLocked()
}

// AuthorizePermissionChange - govern toggling the authority lock bit
//
// revoking is always allowed; restoring is allowed only while no debt
// position is backed by the asset, and stays blocked until exposure
// returns to zero
func AuthorizePermissionChange(oldMask AuthorityMask, newMask AuthorityMask, exposed bool) error {
	switch ClassifyTransition(oldMask, newMask) {
	case Unchanged, Revoke:
		return nil
	case Restore:
		if exposed {
			return fault.ResponseMethodAuthorityLocked
		}
		return nil
	default:
		return fault.InvalidOperation
	}
}

// AuthorizeMethodChange - govern writing the method field
//
// nil writes the field back to absent; that is still a change and
// still needs the update right.  the mask must be the one in force
// before any permission change in the same operation.
func AuthorizeMethodChange(newMethod *Method, permissions AuthorityMask) error {
	if nil != newMethod {
		if err := ValidateMethod(*newMethod); nil != err {
			return err
		}
	}
	if !CanOwnerUpdate(permissions) {
		return fault.ResponseMethodUpdateNotPermitted
	}
	return nil
}
