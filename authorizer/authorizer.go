// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authorizer

import (
	"time"

	"github.com/bitmark-inc/synthd/assetrecord"
	"github.com/bitmark-inc/synthd/bsrm"
	"github.com/bitmark-inc/synthd/capability"
	"github.com/bitmark-inc/synthd/fault"
	"github.com/bitmark-inc/synthd/permission"
)

// fetch the gate and oracle, failing if the module is not running
func engine() (*capability.Gate, Oracle, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, nil, fault.NotInitialised
	}
	return globalData.gate, globalData.oracle, nil
}

// Authorize - evaluate any operation against the stored asset state
//
// current is nil for creation and the stored asset for updates; the
// transaction pipeline and proposal creation both call through here
// with the ledger's current time
func Authorize(operation assetrecord.Operation, current *assetrecord.Asset, now time.Time) (*assetrecord.Asset, error) {

	if _, _, err := engine(); nil != err {
		return nil, err
	}

	switch op := operation.(type) {

	case *assetrecord.CreateAsset:
		if nil != current {
			globalData.create.record(globalData.log, op.OperationName(), fault.AssetAlreadyExists)
			return nil, fault.AssetAlreadyExists
		}
		return Create(op, now)

	case *assetrecord.UpdateAsset:
		return UpdateOptions(current, op, now)

	case *assetrecord.UpdateSyntheticAsset:
		return UpdateSyntheticOptions(current, op, now)

	default:
		return nil, fault.InvalidOperation
	}
}

// Create - authorize registration of a new asset
//
// every field is checked against the rules in force at now; on success
// the stored form of the asset is returned with zero exposure implied
func Create(op *assetrecord.CreateAsset, now time.Time) (*assetrecord.Asset, error) {
	gate, _, err := engine()
	if nil != err {
		return nil, err
	}

	asset, err := createAsset(op, gate, now)
	globalData.create.record(globalData.log, op.OperationName(), err)
	return asset, err
}

func createAsset(op *assetrecord.CreateAsset, gate *capability.Gate, now time.Time) (*assetrecord.Asset, error) {

	if err := assetrecord.ValidateSymbol(op.Symbol); nil != err {
		return nil, err
	}
	if op.Precision > assetrecord.MaxPrecision {
		return nil, fault.PrecisionOutOfRange
	}
	if !op.Category.IsValid() {
		return nil, fault.InvalidAssetCategory
	}
	if op.Options.MarketFeePercent > assetrecord.MaxMarketFeePercent {
		return nil, fault.MarketFeeOutOfRange
	}

	if op.Category.HasSyntheticOptions() {
		if nil == op.Synthetic {
			return nil, fault.SyntheticOptionsRequired
		}
		if err := validateSyntheticRanges(op.Synthetic); nil != err {
			return nil, err
		}
	} else if nil != op.Synthetic {
		return nil, fault.SyntheticOptionsNotAllowed
	}

	if err := permission.CheckFlagBits(op.Category, op.Options.Flags, gate, now); nil != err {
		return nil, err
	}
	if err := permission.CheckPermissionBits(op.Category, op.Options.Permissions, gate, now); nil != err {
		return nil, err
	}

	// a preset method must be configured after creation through the
	// authority path for prediction markets
	if nil != op.Synthetic && nil != op.Synthetic.ResponseMethod {
		if assetrecord.Prediction == op.Category {
			return nil, fault.PredictionMarketCannotPresetResponseMethod
		}
		if !gate.IsActive(capability.BlackSwanResponse, now) {
			return nil, fault.ResponseMethodNotYetActive
		}
		if err := bsrm.ValidateMethod(*op.Synthetic.ResponseMethod); nil != err {
			return nil, err
		}
	}

	asset := &assetrecord.Asset{
		Symbol:    op.Symbol,
		Precision: op.Precision,
		Category:  op.Category,
		Options:   op.Options,
		Synthetic: op.Synthetic,
	}
	return asset.Copy(), nil
}

// UpdateOptions - authorize replacement of the common options
//
// only bits whose value changes are re-validated, so stored state that
// predates a rule change keeps working until it is touched; the
// authority lock transition consults the live exposure reading
func UpdateOptions(current *assetrecord.Asset, op *assetrecord.UpdateAsset, now time.Time) (*assetrecord.Asset, error) {
	gate, oracle, err := engine()
	if nil != err {
		return nil, err
	}

	asset, err := updateOptions(current, op, gate, oracle, now)
	globalData.updateOptions.record(globalData.log, op.OperationName(), err)
	return asset, err
}

func updateOptions(current *assetrecord.Asset, op *assetrecord.UpdateAsset, gate *capability.Gate, oracle Oracle, now time.Time) (*assetrecord.Asset, error) {

	if nil == current || op.AssetId != current.AssetId() {
		return nil, fault.AssetDoesNotExist
	}

	// numeric fields are re-validated on every write
	if op.Options.MarketFeePercent > assetrecord.MaxMarketFeePercent {
		return nil, fault.MarketFeeOutOfRange
	}

	changedFlags := op.Options.Flags ^ current.Options.Flags
	if err := permission.CheckFlagBits(current.Category, changedFlags, gate, now); nil != err {
		return nil, err
	}

	changedPermissions := op.Options.Permissions ^ current.Options.Permissions
	if err := permission.CheckPermissionBits(current.Category, changedPermissions, gate, now); nil != err {
		return nil, err
	}

	// exposure is read only when the lock bit is being cleared
	exposed := false
	if bsrm.Restore == bsrm.ClassifyTransition(current.Options.Permissions, op.Options.Permissions) {
		exposed = oracle.HasOpenExposure(current.AssetId())
	}
	if err := bsrm.AuthorizePermissionChange(current.Options.Permissions, op.Options.Permissions, exposed); nil != err {
		return nil, err
	}

	asset := current.Copy()
	asset.Options = op.Options
	return asset, nil
}

// UpdateSyntheticOptions - authorize replacement of the risk parameters
//
// the response method field is governed by the current authority state;
// sibling numeric parameters are never blocked by it
func UpdateSyntheticOptions(current *assetrecord.Asset, op *assetrecord.UpdateSyntheticAsset, now time.Time) (*assetrecord.Asset, error) {
	gate, _, err := engine()
	if nil != err {
		return nil, err
	}

	asset, err := updateSyntheticOptions(current, op, gate, now)
	globalData.updateSynthetic.record(globalData.log, op.OperationName(), err)
	return asset, err
}

func updateSyntheticOptions(current *assetrecord.Asset, op *assetrecord.UpdateSyntheticAsset, gate *capability.Gate, now time.Time) (*assetrecord.Asset, error) {

	if nil == current || op.AssetId != current.AssetId() {
		return nil, fault.AssetDoesNotExist
	}
	if !current.Category.HasSyntheticOptions() || nil == current.Synthetic {
		return nil, fault.NotSyntheticAsset
	}

	if err := validateSyntheticRanges(&op.Options); nil != err {
		return nil, err
	}

	// writing the method back to absent is still a change
	if !assetrecord.MethodEqual(op.Options.ResponseMethod, current.Synthetic.ResponseMethod) {
		if !gate.IsActive(capability.BlackSwanResponse, now) {
			return nil, fault.ResponseMethodNotYetActive
		}
		if err := bsrm.AuthorizeMethodChange(op.Options.ResponseMethod, current.Options.Permissions); nil != err {
			return nil, err
		}
	}

	asset := current.Copy()
	options := op.Options
	if nil != options.ResponseMethod {
		method := *options.ResponseMethod
		options.ResponseMethod = &method
	}
	asset.Synthetic = &options
	return asset, nil
}

// bounds for the numeric risk parameters
func validateSyntheticRanges(options *assetrecord.SyntheticOptions) error {
	if options.MinimumFeeds < assetrecord.MinMinimumFeeds || options.MinimumFeeds > assetrecord.MaxMinimumFeeds {
		return fault.MinimumFeedsOutOfRange
	}
	if 0 == options.FeedLifetime || options.FeedLifetime > assetrecord.MaxFeedLifetime {
		return fault.FeedLifetimeOutOfRange
	}
	if options.SettlementDelay > assetrecord.MaxSettlementDelay {
		return fault.SettlementDelayOutOfRange
	}
	return nil
}
