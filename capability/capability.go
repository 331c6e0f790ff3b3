// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/synthd/fault"
)

// Capability - capability enumeration
type Capability uint64

// possible capability values
const (
	Nothing           Capability = iota // this must be the first value
	FeedGovernance    Capability = iota // margin and ratio lock permission bits
	BlackSwanResponse Capability = iota // response method field and its authority bit
	maximumValue      Capability = iota // this must be the last value

	First Capability = Nothing + 1
	Last  Capability = maximumValue - 1
	Count int        = int(Last) // count of capabilities
)

// internal conversion
func toString(capability Capability) (string, error) {
	switch capability {
	case Nothing:
		return "", nil
	case FeedGovernance:
		return "feed-governance", nil
	case BlackSwanResponse:
		return "black-swan-response", nil
	default:
		return "", fault.InvalidCapability
	}
}

// convert a string to a capability
func fromString(in string) (Capability, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "feed-governance":
		return FeedGovernance, nil
	case "black-swan-response":
		return BlackSwanResponse, nil
	default:
		return Nothing, fault.InvalidCapability
	}
}

// String - convert a capability to its name
func (capability Capability) String() string {
	s, err := toString(capability)
	if nil != err {
		return fmt.Sprintf("*capability:%d*", uint64(capability))
	}
	return s
}

// GoString - convert enum value and name, for debugging
func (capability Capability) GoString() string {
	return fmt.Sprintf("<Capability#%d:%q>", uint64(capability), capability.String())
}

// IsValid - valid capability if in range of First to Last
// Nothing is not considered as valid
func (capability Capability) IsValid() bool {
	return capability >= First && capability <= Last
}

// MarshalText - convert capability to text
func (capability Capability) MarshalText() ([]byte, error) {
	s, err := toString(capability)
	if nil != err {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText - convert text to capability
func (capability *Capability) UnmarshalText(s []byte) error {
	c, err := fromString(string(s))
	if nil != err {
		return err
	}
	*capability = c
	return nil
}
