// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Every rejection the policy engine can produce has exactly one
// instance here; the error class carries the kind of rejection so
// callers can test either a specific reason or a whole class.
package fault
