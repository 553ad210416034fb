// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/accessd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}

		b := append(append([]byte{}, item.encoded...), 0xff, 0x97)
		value, count := util.FromVarint64(b)
		if value != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d", i, b, value, count, item.value, len(item.encoded))
		}
	}
}

func TestVarint64Truncated(t *testing.T) {
	for i, item := range [][]byte{{}, {0x80}, {0xff, 0xff}, {0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}} {
		value, count := util.FromVarint64(item)
		if 0 != value || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, value, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {
	if v, n := util.ClippedVarint64([]byte{0x40}, 0, 64); 64 != v || 1 != n {
		t.Errorf("in range: %d, %d", v, n)
	}
	if v, n := util.ClippedVarint64([]byte{0x41}, 0, 64); 0 != v || 0 != n {
		t.Errorf("above maximum accepted: %d, %d", v, n)
	}
	if v, n := util.ClippedVarint64([]byte{0x01}, 2, 64); 0 != v || 0 != n {
		t.Errorf("below minimum accepted: %d, %d", v, n)
	}
}

func TestExtractBytes(t *testing.T) {
	packed := util.AppendBytes(nil, []byte{0x11, 0x22})
	packed = util.AppendBytes(packed, []byte{})
	packed = util.AppendUint64(packed, 1554507924)

	first, n := util.ExtractBytes(packed, 64)
	if !bytes.Equal([]byte{0x11, 0x22}, first) || 3 != n {
		t.Fatalf("first field: %x, %d", first, n)
	}
	packed = packed[n:]

	second, n := util.ExtractBytes(packed, 64)
	if 0 != len(second) || 1 != n {
		t.Fatalf("empty field: %x, %d", second, n)
	}
	packed = packed[n:]

	if !bytes.Equal(util.Uint64ToBytes(1554507924), packed) {
		t.Errorf("trailing data: %x", packed)
	}

	if _, n := util.ExtractBytes([]byte{0x05, 0x01}, 64); 0 != n {
		t.Errorf("truncated field accepted")
	}
}
