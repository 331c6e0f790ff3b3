// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

import (
	"time"

	"github.com/bitmark-inc/synthd/chain"
	"github.com/bitmark-inc/synthd/fault"
)

// Gate - immutable activation schedule for one chain
type Gate struct {
	schedule map[Capability]time.Time
}

// activation times for the public chain
var synthSchedule = map[Capability]time.Time{
	FeedGovernance:    time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC),
	BlackSwanResponse: time.Date(2021, time.April, 15, 0, 0, 0, 0, time.UTC),
}

// testing chain activates ahead of the public chain
var testingSchedule = map[Capability]time.Time{
	FeedGovernance:    time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	BlackSwanResponse: time.Date(2020, time.September, 1, 0, 0, 0, 0, time.UTC),
}

// local chains have everything from genesis unless overridden
var localSchedule = map[Capability]time.Time{
	FeedGovernance:    time.Unix(0, 0).UTC(),
	BlackSwanResponse: time.Unix(0, 0).UTC(),
}

// NewGate - the activation schedule for a named chain
func NewGate(chainName string) (*Gate, error) {
	switch chainName {
	case chain.Synth:
		return NewGateWithSchedule(synthSchedule)
	case chain.Testing:
		return NewGateWithSchedule(testingSchedule)
	case chain.Local:
		return NewGateWithSchedule(localSchedule)
	default:
		return nil, fault.InvalidChain
	}
}

// NewGateWithSchedule - a gate with an explicit schedule
//
// for local chains and tests; the schedule is copied so a gate can
// never observe later mutation
func NewGateWithSchedule(schedule map[Capability]time.Time) (*Gate, error) {
	s := make(map[Capability]time.Time, len(schedule))
	for capability, activateAt := range schedule {
		if !capability.IsValid() {
			return nil, fault.InvalidCapability
		}
		s[capability] = activateAt
	}
	return &Gate{schedule: s}, nil
}

// IsActive - true if the capability is recognised at the given time
//
// monotone: once true for some time it is true for every later time
func (gate *Gate) IsActive(capability Capability, at time.Time) bool {
	activateAt, ok := gate.schedule[capability]
	if !ok {
		return false
	}
	return !at.Before(activateAt)
}

// ActivationTime - scheduled activation of a capability
//
// second value is false if the capability never activates on this chain
func (gate *Gate) ActivationTime(capability Capability) (time.Time, bool) {
	activateAt, ok := gate.schedule[capability]
	return activateAt, ok
}
