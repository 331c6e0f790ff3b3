// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the decoded structure selects the chain, the data store location and
// the logging setup; on a local chain the capability activation times
// can be overridden to position a development net before or after any
// epoch.
package configuration
