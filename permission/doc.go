// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package permission - per-category legality of permission and flag bits
//
// A single explicit table per asset category lists every structurally
// legal permission bit and flag bit.  Bits introduced by a protocol
// capability are additionally gated on the capability being active at
// evaluation time; before activation they behave like unknown bits
// apart from the more precise rejection reason.
//
// The tables are checked for completeness when the package loads, so
// adding a category without deciding its bits fails immediately
// rather than silently allowing nothing.
package permission
