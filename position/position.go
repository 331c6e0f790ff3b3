// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package position

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/synthd/assetrecord"
	"github.com/bitmark-inc/synthd/authorizer"
	"github.com/bitmark-inc/synthd/fault"
	"github.com/bitmark-inc/synthd/storage"
)

// globals for this module
type positionData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	// set once during initialise
	initialised bool
}

// global data
var globalData positionData

// Initialise - start the position ledger
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("position")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - stop the position ledger
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Ledger - handle onto the stored positions
//
// a value of this type is the exposure oracle handed to the authorizer
type Ledger struct{}

// the authorizer consults the ledger through this interface
var _ authorizer.Oracle = Ledger{}

// key: asset id bytes followed by the big endian position number
func positionKey(assetId assetrecord.AssetId, positionId uint64) []byte {
	key := make([]byte, len(assetId), len(assetId)+8)
	copy(key, assetId[:])
	number := make([]byte, 8)
	binary.BigEndian.PutUint64(number, positionId)
	return append(key, number...)
}

// Open - record a new debt position backed by an asset
func Open(assetId assetrecord.AssetId, positionId uint64, debt uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if 0 == debt {
		return fault.InvalidOperation
	}

	key := positionKey(assetId, positionId)
	if storage.Pool.Positions.Has(key) {
		return fault.PositionAlreadyExists
	}

	storage.Pool.Positions.PutN(key, debt)
	globalData.log.Infof("open: asset: %s  position: %d  debt: %d", assetId, positionId, debt)
	return nil
}

// Close - pay down a position, removing it when fully covered
func Close(assetId assetrecord.AssetId, positionId uint64, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	key := positionKey(assetId, positionId)
	debt, ok := storage.Pool.Positions.GetN(key)
	if !ok {
		return fault.PositionDoesNotExist
	}
	if amount > debt {
		return fault.PositionUnderflow
	}

	if amount == debt {
		storage.Pool.Positions.Delete(key)
		globalData.log.Infof("close: asset: %s  position: %d", assetId, positionId)
		return nil
	}

	storage.Pool.Positions.PutN(key, debt-amount)
	globalData.log.Infof("reduce: asset: %s  position: %d  debt: %d", assetId, positionId, debt-amount)
	return nil
}

// Debt - outstanding debt of one position
func Debt(assetId assetrecord.AssetId, positionId uint64) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	debt, ok := storage.Pool.Positions.GetN(positionKey(assetId, positionId))
	if !ok {
		return 0, fault.PositionDoesNotExist
	}
	return debt, nil
}

// TotalDebt - sum of the outstanding debt backed by an asset
func TotalDebt(assetId assetrecord.AssetId) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	total := uint64(0)
	storage.Pool.Positions.Scan(assetId[:], func(key []byte, value []byte) bool {
		if 8 == len(value) {
			total += binary.BigEndian.Uint64(value)
		}
		return true
	})
	return total
}

// HasOpenExposure - true while any open position is backed by the asset
func (Ledger) HasOpenExposure(assetId assetrecord.AssetId) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	exposed := false
	storage.Pool.Positions.Scan(assetId[:], func(key []byte, value []byte) bool {
		exposed = true
		return false
	})
	return exposed
}
