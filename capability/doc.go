// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package capability - protocol capability activation
//
// Each named capability becomes recognised by validators at a fixed
// time on each chain.  Before that time any operation referencing the
// capability is rejected; at or after it the operation is evaluated
// normally.  Activation is permanent: once a capability is active it
// never retracts.
//
// The gate is a pure function of (capability, time) so the same gate
// value can serve the transaction pipeline and read-only queries
// concurrently.
package capability
