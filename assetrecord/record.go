// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"github.com/bitmark-inc/synthd/bsrm"
)

// field limits
const (
	MinSymbolLength = 3
	MaxSymbolLength = 16

	MaxPrecision = 12

	// basis points: 10000 = 100%
	MaxMarketFeePercent = 10000

	MinMinimumFeeds = 1
	MaxMinimumFeeds = 100

	// seconds
	MaxFeedLifetime    = 30 * 24 * 60 * 60
	MaxSettlementDelay = 30 * 24 * 60 * 60
)

// AssetOptions - the common options every asset carries
type AssetOptions struct {
	MaxSupply        uint64         `json:"maxSupply,string"`
	MarketFeePercent uint64         `json:"marketFeePercent"` // basis points
	Flags            FlagMask       `json:"flags"`
	Permissions      PermissionMask `json:"permissions"`
}

// SyntheticOptions - risk parameters for synthetic and prediction assets
type SyntheticOptions struct {
	MinimumFeeds    uint64       `json:"minimumFeeds"`
	FeedLifetime    uint64       `json:"feedLifetime"`    // seconds
	SettlementDelay uint64       `json:"settlementDelay"` // seconds
	ResponseMethod  *bsrm.Method `json:"responseMethod,omitempty"`
}

// Method - the effective response method
//
// an absent field behaves as GlobalSettlement
func (options *SyntheticOptions) Method() bsrm.Method {
	if nil == options.ResponseMethod {
		return bsrm.GlobalSettlement
	}
	return *options.ResponseMethod
}

// MethodEqual - compare two optional methods by presence and value
func MethodEqual(a *bsrm.Method, b *bsrm.Method) bool {
	if nil == a || nil == b {
		return a == b
	}
	return *a == *b
}

// copy - deep copy including the optional method
func (options *SyntheticOptions) copy() *SyntheticOptions {
	if nil == options {
		return nil
	}
	result := *options
	if nil != options.ResponseMethod {
		method := *options.ResponseMethod
		result.ResponseMethod = &method
	}
	return &result
}

// Asset - the stored asset configuration
type Asset struct {
	Symbol    string            `json:"symbol"`
	Precision uint64            `json:"precision"`
	Category  Category          `json:"category"`
	Options   AssetOptions      `json:"options"`
	Synthetic *SyntheticOptions `json:"synthetic,omitempty"`
}

// AssetId - identifier of this asset
func (asset *Asset) AssetId() AssetId {
	return NewAssetId(asset.Symbol)
}

// CanOwnerUpdateBsrm - current state of the response method update right
func (asset *Asset) CanOwnerUpdateBsrm() bool {
	return bsrm.CanOwnerUpdate(asset.Options.Permissions)
}

// Method - the effective response method of this asset
//
// basic assets have no settlement policy and read as GlobalSettlement
func (asset *Asset) Method() bsrm.Method {
	if nil == asset.Synthetic {
		return bsrm.GlobalSettlement
	}
	return asset.Synthetic.Method()
}

// Copy - deep copy for building a prospective new state
func (asset *Asset) Copy() *Asset {
	result := *asset
	result.Synthetic = asset.Synthetic.copy()
	return &result
}
