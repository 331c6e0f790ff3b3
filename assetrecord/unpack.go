// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"github.com/bitmark-inc/synthd/bsrm"
	"github.com/bitmark-inc/synthd/fault"
	"github.com/bitmark-inc/synthd/util"
)

// Unpack - turn a byte slice back into an asset record
//
// second value is the number of bytes consumed
func (record Packed) Unpack() (asset *Asset, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			asset = nil
			n = 0
			e = fault.NotAssetPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotAssetPack
	}

	switch TagType(recordType) {

	case AssetStateTag:

		// symbol
		symbolLength, symbolOffset := util.ClippedVarint64(record[n:], 1, MaxSymbolLength)
		if 0 == symbolOffset {
			return nil, 0, fault.NotAssetPack
		}
		n += symbolOffset
		symbol := string(record[n : n+symbolLength])
		n += symbolLength

		// precision
		precision, precisionLength := util.FromVarint64(record[n:])
		if 0 == precisionLength {
			return nil, 0, fault.NotAssetPack
		}
		n += precisionLength

		// category
		c, categoryLength := util.FromVarint64(record[n:])
		if 0 == categoryLength {
			return nil, 0, fault.NotAssetPack
		}
		n += categoryLength
		category := Category(c)
		if !category.IsValid() {
			return nil, 0, fault.InvalidAssetCategory
		}

		// common options
		maxSupply, maxSupplyLength := util.FromVarint64(record[n:])
		if 0 == maxSupplyLength {
			return nil, 0, fault.NotAssetPack
		}
		n += maxSupplyLength

		marketFee, marketFeeLength := util.FromVarint64(record[n:])
		if 0 == marketFeeLength {
			return nil, 0, fault.NotAssetPack
		}
		n += marketFeeLength

		flags, flagsLength := util.FromVarint64(record[n:])
		if 0 == flagsLength || flags > 0xffff {
			return nil, 0, fault.NotAssetPack
		}
		n += flagsLength

		permissions, permissionsLength := util.FromVarint64(record[n:])
		if 0 == permissionsLength || permissions > 0xffff {
			return nil, 0, fault.NotAssetPack
		}
		n += permissionsLength

		asset := &Asset{
			Symbol:    symbol,
			Precision: precision,
			Category:  category,
			Options: AssetOptions{
				MaxSupply:        maxSupply,
				MarketFeePercent: marketFee,
				Flags:            FlagMask(flags),
				Permissions:      PermissionMask(permissions),
			},
		}

		// synthetic block presence marker
		present, presentLength := util.FromVarint64(record[n:])
		if 0 == presentLength || present > 1 {
			return nil, 0, fault.NotAssetPack
		}
		n += presentLength
		if 0 == present {
			if category.HasSyntheticOptions() {
				return nil, 0, fault.SyntheticOptionsRequired
			}
			return asset, n, nil
		}
		if !category.HasSyntheticOptions() {
			return nil, 0, fault.SyntheticOptionsNotAllowed
		}

		minimumFeeds, minimumFeedsLength := util.FromVarint64(record[n:])
		if 0 == minimumFeedsLength {
			return nil, 0, fault.NotAssetPack
		}
		n += minimumFeedsLength

		feedLifetime, feedLifetimeLength := util.FromVarint64(record[n:])
		if 0 == feedLifetimeLength {
			return nil, 0, fault.NotAssetPack
		}
		n += feedLifetimeLength

		settlementDelay, settlementDelayLength := util.FromVarint64(record[n:])
		if 0 == settlementDelayLength {
			return nil, 0, fault.NotAssetPack
		}
		n += settlementDelayLength

		asset.Synthetic = &SyntheticOptions{
			MinimumFeeds:    minimumFeeds,
			FeedLifetime:    feedLifetime,
			SettlementDelay: settlementDelay,
		}

		// optional method presence marker
		methodPresent, methodPresentLength := util.FromVarint64(record[n:])
		if 0 == methodPresentLength || methodPresent > 1 {
			return nil, 0, fault.NotAssetPack
		}
		n += methodPresentLength
		if 1 == methodPresent {
			m, methodLength := util.FromVarint64(record[n:])
			if 0 == methodLength {
				return nil, 0, fault.NotAssetPack
			}
			n += methodLength
			method := bsrm.Method(m)
			if err := bsrm.ValidateMethod(method); nil != err {
				return nil, 0, err
			}
			asset.Synthetic.ResponseMethod = &method
		}

		return asset, n, nil

	default:
		return nil, 0, fault.NotAssetPack
	}
}
