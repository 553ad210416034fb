// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// AppendBytes - append a Varint64 length followed by the data
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// ExtractBytes - read a length prefixed byte field of at most maximum bytes
//
// returns a copy of the field and the total bytes consumed, or nil, 0
// if the buffer is truncated or the length is out of range
func ExtractBytes(buffer []byte, maximum int) ([]byte, int) {
	length, n := ClippedVarint64(buffer, 0, maximum)
	if 0 == n || len(buffer) < n+length {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[n:n+length])
	return data, n + length
}

// AppendUint64 - append a big endian uint64
func AppendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// Uint64ToBytes - big endian encoding used for record counts and times
func Uint64ToBytes(value uint64) []byte {
	return AppendUint64(make([]byte, 0, 8), value)
}
