// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	gocache "github.com/patrickmn/go-cache"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - one key-prefixed slice of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Put nil database")
		return
	}
	prefixedKey := p.prefixKey(key)
	err := poolData.db.Put(prefixedKey, value, nil)
	logger.PanicIfError("pool.Put", err)

	stored := make([]byte, len(value))
	copy(stored, value)
	poolData.cache.Set(string(prefixedKey), stored, gocache.NoExpiration)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	prefixedKey := p.prefixKey(key)
	err := poolData.db.Delete(prefixedKey, nil)
	logger.PanicIfError("pool.Delete", err)
	poolData.cache.Delete(string(prefixedKey))
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return nil
	}
	prefixedKey := p.prefixKey(key)

	if cached, ok := poolData.cache.Get(string(prefixedKey)); ok {
		return cached.([]byte)
	}

	value, err := poolData.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)

	poolData.cache.Set(string(prefixedKey), value, gocache.NoExpiration)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// PutN - store a big endian uint64 value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return false
	}
	prefixedKey := p.prefixKey(key)
	if _, ok := poolData.cache.Get(string(prefixedKey)); ok {
		return true
	}
	value, err := poolData.db.Has(prefixedKey, nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// Scan - walk every element of the pool in key order
//
// keys sharing the given key prefix only; the callback returns false
// to stop early.  keys and values are copies and may be retained.
func (p *PoolHandle) Scan(keyPrefix []byte, f func(key []byte, value []byte) bool) {
	scanRange := ldb_util.BytesPrefix(p.prefixKey(keyPrefix))

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return
	}

	iter := poolData.db.NewIterator(scanRange, nil)
	defer iter.Release()

	for iter.Next() {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !f(dataKey, dataValue) {
			break
		}
	}
	logger.PanicIfError("pool.Scan", iter.Error())
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return Element{}, false
	}

	iter := poolData.db.NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}
