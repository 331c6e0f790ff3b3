// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"github.com/bitmark-inc/synthd/fault"
	"github.com/bitmark-inc/synthd/util"
)

// TagType - type code for stored records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AssetStateTag = TagType(iota) // asset configuration state

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// ValidateSymbol - check length and character set of an asset symbol
//
// first character A…Z, remainder A…Z or 0…9
func ValidateSymbol(symbol string) error {
	if len(symbol) < MinSymbolLength {
		return fault.SymbolTooShort
	}
	if len(symbol) > MaxSymbolLength {
		return fault.SymbolTooLong
	}
	for i := 0; i < len(symbol); i += 1 {
		c := symbol[i]
		if c >= 'A' && c <= 'Z' {
			continue
		}
		if i > 0 && c >= '0' && c <= '9' {
			continue
		}
		return fault.InvalidSymbolCharacter
	}
	return nil
}

// Pack - encode the asset state for the storage pools
//
// Varint64(tag) followed by fields in struct order; the synthetic
// block is preceded by a presence marker, as is the optional method
func (asset *Asset) Pack() (Packed, error) {
	if err := ValidateSymbol(asset.Symbol); nil != err {
		return nil, err
	}
	if asset.Precision > MaxPrecision {
		return nil, fault.PrecisionOutOfRange
	}
	if !asset.Category.IsValid() {
		return nil, fault.InvalidAssetCategory
	}
	if asset.Category.HasSyntheticOptions() {
		if nil == asset.Synthetic {
			return nil, fault.SyntheticOptionsRequired
		}
	} else if nil != asset.Synthetic {
		return nil, fault.SyntheticOptionsNotAllowed
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(AssetStateTag))
	message = appendString(message, asset.Symbol)
	message = appendUint64(message, asset.Precision)
	message = appendUint64(message, uint64(asset.Category))
	message = appendUint64(message, asset.Options.MaxSupply)
	message = appendUint64(message, asset.Options.MarketFeePercent)
	message = appendUint64(message, uint64(asset.Options.Flags))
	message = appendUint64(message, uint64(asset.Options.Permissions))

	if nil == asset.Synthetic {
		message = appendUint64(message, 0)
		return Packed(message), nil
	}
	message = appendUint64(message, 1)
	message = appendUint64(message, asset.Synthetic.MinimumFeeds)
	message = appendUint64(message, asset.Synthetic.FeedLifetime)
	message = appendUint64(message, asset.Synthetic.SettlementDelay)

	if nil == asset.Synthetic.ResponseMethod {
		message = appendUint64(message, 0)
	} else {
		message = appendUint64(message, 1)
		message = appendUint64(message, uint64(*asset.Synthetic.ResponseMethod))
	}

	return Packed(message), nil
}

// append a single field of data
func appendUint64(buffer []byte, value uint64) []byte {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}

// append a length prefixed string
func appendString(buffer []byte, s string) []byte {
	length := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, length...)
	return append(buffer, s...)
}
