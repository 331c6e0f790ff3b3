// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/synthd/fault"
)

// Category - asset category enumeration
//
// fixed at creation, never changes afterwards
type Category uint64

// possible category values
const (
	Nothing    Category = iota // this must be the first value
	Basic      Category = iota // plain issuer-backed asset
	Prediction Category = iota // prediction market
	Synthetic  Category = iota // collateralized synthetic asset
	maximum    Category = iota // this must be the last value

	First Category = Nothing + 1
	Last  Category = maximum - 1
	Count int      = int(Last) // count of categories
)

// internal conversion
func toString(category Category) (string, error) {
	switch category {
	case Nothing:
		return "", nil
	case Basic:
		return "basic", nil
	case Prediction:
		return "prediction", nil
	case Synthetic:
		return "synthetic", nil
	default:
		return "", fault.InvalidAssetCategory
	}
}

// convert a string to a category
func fromString(in string) (Category, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "basic":
		return Basic, nil
	case "prediction":
		return Prediction, nil
	case "synthetic":
		return Synthetic, nil
	default:
		return Nothing, fault.InvalidAssetCategory
	}
}

// String - convert a category to its name
func (category Category) String() string {
	s, err := toString(category)
	if nil != err {
		return fmt.Sprintf("*category:%d*", uint64(category))
	}
	return s
}

// GoString - convert enum value and name, for debugging
func (category Category) GoString() string {
	return fmt.Sprintf("<Category#%d:%q>", uint64(category), category.String())
}

// IsValid - valid category if in range of First to Last
// Nothing is not considered as valid
func (category Category) IsValid() bool {
	return category >= First && category <= Last
}

// HasSyntheticOptions - categories that carry synthetic options
func (category Category) HasSyntheticOptions() bool {
	return Prediction == category || Synthetic == category
}

// MarshalText - convert category to text
func (category Category) MarshalText() ([]byte, error) {
	s, err := toString(category)
	if nil != err {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText - convert text to category
func (category *Category) UnmarshalText(s []byte) error {
	c, err := fromString(string(s))
	if nil != err {
		return err
	}
	*category = c
	return nil
}
