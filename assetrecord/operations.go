// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

// Operation - any asset configuration operation
//
// the same operation value is evaluated by the transaction pipeline
// and by deferred-proposal creation
type Operation interface {
	// OperationName - stable name for logs and the operator tool
	OperationName() string
}

// CreateAsset - register a new asset
type CreateAsset struct {
	Symbol    string            `json:"symbol"`
	Precision uint64            `json:"precision"`
	Category  Category          `json:"category"`
	Options   AssetOptions      `json:"options"`
	Synthetic *SyntheticOptions `json:"synthetic,omitempty"`
}

// UpdateAsset - replace the common options of an existing asset
type UpdateAsset struct {
	AssetId AssetId      `json:"assetId"`
	Options AssetOptions `json:"options"`
}

// UpdateSyntheticAsset - replace the synthetic options of an existing asset
type UpdateSyntheticAsset struct {
	AssetId AssetId          `json:"assetId"`
	Options SyntheticOptions `json:"options"`
}

// OperationName - operation tag for CreateAsset
func (operation *CreateAsset) OperationName() string { return "asset-create" }

// OperationName - operation tag for UpdateAsset
func (operation *UpdateAsset) OperationName() string { return "asset-update" }

// OperationName - operation tag for UpdateSyntheticAsset
func (operation *UpdateSyntheticAsset) OperationName() string { return "asset-update-synthetic" }
