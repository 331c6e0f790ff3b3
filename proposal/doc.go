// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proposal - evaluation of operations queued for co-signature
//
// A proposed operation is checked with exactly the rules and the time
// that a direct submission would see.  A proposal created before a
// capability epoch is rejected even though it would execute after it;
// one created after the epoch passes.  The deferred execution itself
// is handled elsewhere.
package proposal
