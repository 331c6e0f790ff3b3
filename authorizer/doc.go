// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authorizer - the accept/reject decision for asset operations
//
// Three entry points cover the operation set: Create, UpdateOptions and
// UpdateSyntheticOptions; Authorize dispatches an Operation value to the
// right one.  Every decision is a pure function of the asset's stored
// state, the operation, the evaluation time and the current exposure
// reading; on accept the resulting asset value is returned for the
// caller to commit, on reject nothing is applied.
//
// The rules composed here:
//
//	capability gate  - nothing referencing an inactive capability passes
//	permission table - only category-legal bits may be written
//	ratchet          - the response method authority loosens only when safe
//	grandfathering   - unchanged bits of an existing asset are not re-checked
//
// Direct submission and proposal creation evaluate through the same
// Authorize call, both with the ledger's current time, so the two paths
// can never disagree.
package authorizer
