// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/synthd/fault"
)

// limits
const (
	AssetIdLength = 64
)

// AssetId - the type for an asset identifier
//
// SHA3-512 of the asset symbol; hex text for JSON encoding
// to get bytes value just use assetId[:]
type AssetId [AssetIdLength]byte

// NewAssetId - create an asset id from a symbol
func NewAssetId(symbol string) AssetId {
	return AssetId(sha3.Sum512([]byte(symbol)))
}

// String - convert a binary assetId to hex string for use by the fmt package (for %s)
func (assetId AssetId) String() string {
	return hex.EncodeToString(assetId[:])
}

// GoString - convert a binary assetId to hex string for use by the fmt package (for %#v)
func (assetId AssetId) GoString() string {
	return "<asset:" + hex.EncodeToString(assetId[:]) + ">"
}

// Scan - convert a hex text representation to an assetId for use by the format package scan routines
func (assetId *AssetId) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(AssetIdLength) {
		return fault.NotAssetId
	}

	byteCount, err := hex.Decode(assetId[:], token)
	if nil != err {
		return err
	}

	if AssetIdLength != byteCount {
		return fault.NotAssetId
	}
	return nil
}

// MarshalText - convert assetId to hex text
func (assetId AssetId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(assetId)))
	hex.Encode(buffer, assetId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an assetId
func (assetId *AssetId) UnmarshalText(s []byte) error {
	if len(assetId) != hex.DecodedLen(len(s)) {
		return fault.NotAssetId
	}
	byteCount, err := hex.Decode(assetId[:], s)
	if nil != err {
		return err
	}
	if AssetIdLength != byteCount {
		return fault.NotAssetId
	}
	return nil
}
