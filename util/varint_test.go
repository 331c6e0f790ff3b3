// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/synthd/util"
)

func TestVarint64RoundTrip(t *testing.T) {
	testData := []struct {
		value   uint64
		encoded []byte
	}{
		{0x00, []byte{0x00}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range testData {
		encoded := util.ToVarint64(item.value)
		if !bytes.Equal(encoded, item.encoded) {
			t.Errorf("%d: encode: %d → %x  expected: %x", i, item.value, encoded, item.encoded)
		}

		decoded, count := util.FromVarint64(encoded)
		if count != len(item.encoded) {
			t.Errorf("%d: decode count: %d  expected: %d", i, count, len(item.encoded))
		}
		if decoded != item.value {
			t.Errorf("%d: decode: %x → %d  expected: %d", i, encoded, decoded, item.value)
		}
	}
}

func TestVarint64Truncated(t *testing.T) {
	value, count := util.FromVarint64([]byte{0x80})
	if 0 != value || 0 != count {
		t.Errorf("truncated decode returned: %d, %d  expected: 0, 0", value, count)
	}
}

func TestClippedVarint64(t *testing.T) {
	testData := []struct {
		buffer  []byte
		minimum int
		maximum int
		value   int
		count   int
	}{
		{[]byte{0x05}, 1, 10, 5, 1},
		{[]byte{0x05}, 6, 10, 0, 0},
		{[]byte{0x00}, 1, 10, 0, 0},
		{[]byte{0x80, 0x01}, 1, 8192, 128, 2},
		{[]byte{0x80}, 1, 8192, 0, 0}, // truncated
		{[]byte{0x05}, 10, 1, 0, 0},   // inverted range
	}

	for i, item := range testData {
		value, count := util.ClippedVarint64(item.buffer, item.minimum, item.maximum)
		if value != item.value || count != item.count {
			t.Errorf("%d: clipped: %d, %d  expected: %d, %d", i, value, count, item.value, item.count)
		}
	}
}
