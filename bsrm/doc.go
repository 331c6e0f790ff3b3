// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bsrm - black swan response method policy
//
// A synthetic asset carries an optional response method that the
// settlement engine consults when collateral no longer covers debt.
// An absent method behaves as GlobalSettlement.
//
// The issuer's right to change the method is itself a permission bit
// and is governed by a one-directional ratchet: the issuer may always
// give the right up, but may take it back only while no debt position
// is backed by the asset.
package bsrm
