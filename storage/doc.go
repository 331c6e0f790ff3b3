// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// A single LevelDB database divided into pools by a one byte key
// prefix.  The prefix of each pool is recorded as a struct tag on the
// Pool variable and applied by Initialise, so a pool can never read
// another pool's records.
//
// Reads go through a write-through memory cache; the database is only
// touched on a cache miss.
//
// Current pools:
//
//	A - asset configuration records
//	P - open debt positions
//	Z - reserved for testing
package storage
