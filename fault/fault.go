// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// ExistsError - something already exists
	ExistsError GenericError
	// InvalidError - a value is not structurally legal
	InvalidError GenericError
	// LengthError - a field is outside its permitted length
	LengthError GenericError
	// NotActiveError - a capability is referenced before its activation epoch
	NotActiveError GenericError
	// NotFoundError - something that should exist does not
	NotFoundError GenericError
	// PermissionError - operation requires an authority that is not held
	PermissionError GenericError
	// PolicyError - a category-specific structural rule was broken
	PolicyError GenericError
	// ProcessError - the operation could not be processed
	ProcessError GenericError
	// RangeError - an enumerated or numeric value is outside its closed set
	RangeError GenericError
	// RatchetError - an attempt to loosen a one-directional safety lock
	RatchetError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised                         = ProcessError("already initialised")
	AssetAlreadyExists                         = ExistsError("asset already exists")
	AssetDoesNotExist                          = NotFoundError("asset does not exist")
	CapabilityAlreadyScheduled                 = ExistsError("capability already scheduled")
	DatabaseIsNewerVersion                     = ProcessError("database is newer version")
	FeedLifetimeOutOfRange                     = RangeError("feed lifetime out of range")
	FlagBitNotYetActive                        = NotActiveError("flag bit not yet active")
	IllegalFlagBits                            = InvalidError("flag bits not legal for asset category")
	IllegalPermissionBits                      = InvalidError("permission bits not legal for asset category")
	InvalidAssetCategory                       = InvalidError("invalid asset category")
	InvalidCapability                          = InvalidError("invalid capability")
	InvalidChain                               = InvalidError("invalid chain")
	InvalidOperation                           = InvalidError("invalid operation")
	InvalidSymbolCharacter                     = InvalidError("symbol contains an invalid character")
	MarketFeeOutOfRange                        = RangeError("market fee out of range")
	MinimumFeedsOutOfRange                     = RangeError("minimum feeds out of range")
	NotAssetId                                 = InvalidError("not an asset id")
	NotAssetPack                               = InvalidError("not an asset pack")
	NotInitialised                             = ProcessError("not initialised")
	NotSyntheticAsset                          = InvalidError("not a synthetic asset")
	PermissionBitNotYetActive                  = NotActiveError("permission bit not yet active")
	PositionAlreadyExists                      = ExistsError("position already exists")
	PositionDoesNotExist                       = NotFoundError("position does not exist")
	PositionUnderflow                          = InvalidError("close exceeds outstanding debt")
	PrecisionOutOfRange                        = RangeError("precision out of range")
	PredictionMarketCannotLockResponseMethod   = PolicyError("prediction market cannot lock response method")
	PredictionMarketCannotPresetResponseMethod = PolicyError("prediction market cannot preset response method")
	ResponseMethodAuthorityIsNotAFlag          = PolicyError("response method authority is not a flag")
	ResponseMethodAuthorityLocked              = RatchetError("response method authority locked by open exposure")
	ResponseMethodNotYetActive                 = NotActiveError("response method not yet active")
	ResponseMethodOutOfRange                   = RangeError("response method out of range")
	ResponseMethodUpdateNotPermitted           = PermissionError("response method update not permitted")
	SettlementDelayOutOfRange                  = RangeError("settlement delay out of range")
	SymbolTooLong                              = LengthError("symbol is too long")
	SymbolTooShort                             = LengthError("symbol is too short")
	SyntheticOptionsNotAllowed                 = InvalidError("synthetic options not allowed for basic asset")
	SyntheticOptionsRequired                   = InvalidError("synthetic options required")
	WrongDatabaseVersion                       = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotActiveError) Error() string  { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e PolicyError) Error() string     { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RangeError) Error() string      { return string(e) }
func (e RatchetError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotActive(e error) bool  { _, ok := e.(NotActiveError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrPolicy(e error) bool     { _, ok := e.(PolicyError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool      { _, ok := e.(RangeError); return ok }
func IsErrRatchet(e error) bool    { _, ok := e.(RatchetError); return ok }
