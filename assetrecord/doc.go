// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assetrecord - the asset configuration records
//
// Defines the value space the policy engine governs: asset categories,
// the permission and flag bit masks, the common and synthetic option
// records, the configuration operations and the binary pack/unpack
// used by the storage pools.
//
// The records carry no physical-encoding obligations beyond the pack
// format here; what values are *legal* is decided by the permission
// tables and the authorizer, not by this package.
package assetrecord
