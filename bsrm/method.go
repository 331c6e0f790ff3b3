// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bsrm

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/synthd/fault"
)

// Method - response method enumeration
//
// the numeric values are fixed: they are stored in the database and
// appear in operations
type Method uint64

// possible method values
const (
	GlobalSettlement            Method = iota // settle every position at the feed price
	NoSettlement                Method = iota // suspend settlement, track the debt
	IndividualSettlementToFund  Method = iota // settle offending positions into a common fund
	IndividualSettlementToOrder Method = iota // settle offending positions onto the book

	maximumValue Method = iota // this must be the last value
)

// internal conversion
func toString(method Method) (string, error) {
	switch method {
	case GlobalSettlement:
		return "global-settlement", nil
	case NoSettlement:
		return "no-settlement", nil
	case IndividualSettlementToFund:
		return "individual-settlement-to-fund", nil
	case IndividualSettlementToOrder:
		return "individual-settlement-to-order", nil
	default:
		return "", fault.ResponseMethodOutOfRange
	}
}

// convert a string to a method
func fromString(in string) (Method, error) {
	switch strings.ToLower(in) {
	case "global-settlement":
		return GlobalSettlement, nil
	case "no-settlement":
		return NoSettlement, nil
	case "individual-settlement-to-fund":
		return IndividualSettlementToFund, nil
	case "individual-settlement-to-order":
		return IndividualSettlementToOrder, nil
	default:
		return GlobalSettlement, fault.ResponseMethodOutOfRange
	}
}

// String - convert a method to its name
func (method Method) String() string {
	s, err := toString(method)
	if nil != err {
		return fmt.Sprintf("*method:%d*", uint64(method))
	}
	return s
}

// GoString - convert enum value and name, for debugging
func (method Method) GoString() string {
	return fmt.Sprintf("<Method#%d:%q>", uint64(method), method.String())
}

// IsValid - true if the method is one of the closed set
func (method Method) IsValid() bool {
	return method < maximumValue
}

// ValidateMethod - reject a method outside the closed set
func ValidateMethod(method Method) error {
	if !method.IsValid() {
		return fault.ResponseMethodOutOfRange
	}
	return nil
}

// MarshalText - convert method to text
func (method Method) MarshalText() ([]byte, error) {
	s, err := toString(method)
	if nil != err {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText - convert text to method
func (method *Method) UnmarshalText(s []byte) error {
	m, err := fromString(string(s))
	if nil != err {
		return err
	}
	*method = m
	return nil
}
