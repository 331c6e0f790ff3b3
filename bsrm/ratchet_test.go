// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bsrm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/synthd/bsrm"
	"github.com/bitmark-inc/synthd/fault"
)

// minimal mask: just the lock bit
type mask bool

func (m mask) BsrmUpdateLocked() bool { return bool(m) }

const (
	unlocked = mask(false)
	locked   = mask(true)
)

func TestClassifyTransition(t *testing.T) {
	testData := []struct {
		oldMask    mask
		newMask    mask
		transition bsrm.Transition
	}{
		{unlocked, unlocked, bsrm.Unchanged},
		{locked, locked, bsrm.Unchanged},
		{unlocked, locked, bsrm.Revoke},
		{locked, unlocked, bsrm.Restore},
	}

	for i, item := range testData {
		transition := bsrm.ClassifyTransition(item.oldMask, item.newMask)
		if transition != item.transition {
			t.Errorf("%d: transition: %v  expected: %v", i, transition, item.transition)
		}
	}
}

// revoking always succeeds, restoring only without exposure
func TestRatchetAsymmetry(t *testing.T) {
	testData := []struct {
		oldMask mask
		newMask mask
		exposed bool
		err     error
	}{
		{unlocked, locked, false, nil},
		{unlocked, locked, true, nil}, // tighten under live risk: ok
		{locked, unlocked, false, nil},
		{locked, unlocked, true, fault.ResponseMethodAuthorityLocked},
		{locked, locked, true, nil},     // no-op: never consults exposure rule
		{unlocked, unlocked, true, nil}, // no-op
	}

	for i, item := range testData {
		err := bsrm.AuthorizePermissionChange(item.oldMask, item.newMask, item.exposed)
		if err != item.err {
			t.Errorf("%d: authorize returned: %v  expected: %v", i, err, item.err)
		}
	}
}

// blocked restoration stays blocked while exposed, opens at zero exposure
func TestRatchetReopens(t *testing.T) {
	err := bsrm.AuthorizePermissionChange(locked, unlocked, true)
	assert.Equal(t, fault.ResponseMethodAuthorityLocked, err, "restore while exposed")
	assert.True(t, fault.IsErrRatchet(err), "expected a ratchet error")

	// still exposed: still blocked, no time component
	err = bsrm.AuthorizePermissionChange(locked, unlocked, true)
	assert.Equal(t, fault.ResponseMethodAuthorityLocked, err, "restore while still exposed")

	// exposure gone: allowed again
	err = bsrm.AuthorizePermissionChange(locked, unlocked, false)
	assert.Nil(t, err, "restore at zero exposure")
}

func TestCanOwnerUpdate(t *testing.T) {
	assert.True(t, bsrm.CanOwnerUpdate(unlocked), "unlocked mask should allow update")
	assert.False(t, bsrm.CanOwnerUpdate(locked), "locked mask should deny update")
}

func TestAuthorizeMethodChange(t *testing.T) {
	one := bsrm.NoSettlement
	bad := bsrm.Method(4)

	testData := []struct {
		newMethod   *bsrm.Method
		permissions mask
		err         error
	}{
		{&one, unlocked, nil},
		{&one, locked, fault.ResponseMethodUpdateNotPermitted},
		{nil, unlocked, nil}, // reset to absent with authority
		{nil, locked, fault.ResponseMethodUpdateNotPermitted},
		{&bad, unlocked, fault.ResponseMethodOutOfRange},
		{&bad, locked, fault.ResponseMethodOutOfRange}, // range checked first
	}

	for i, item := range testData {
		err := bsrm.AuthorizeMethodChange(item.newMethod, item.permissions)
		if err != item.err {
			t.Errorf("%d: authorize returned: %v  expected: %v", i, err, item.err)
		}
	}
}
