// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/accessd/fault"
)

// Address - 20 byte account identifier
type Address = common.Address

// AddressLength - bytes in an address
const AddressLength = common.AddressLength

// key lengths accepted by the deriver
const (
	compressedKeyLength   = 33
	rawKeyLength          = 64
	uncompressedKeyLength = 65
)

// Deriver - maps a public key to the address it controls
type Deriver interface {
	Derive(publicKey []byte) (Address, error)
}

// DeriverFunc - adapt a function to a Deriver
type DeriverFunc func([]byte) (Address, error)

// Derive - call the function
func (f DeriverFunc) Derive(publicKey []byte) (Address, error) {
	return f(publicKey)
}

// KeccakDeriver - last 20 bytes of Keccak-256 over the uncompressed
// secp256k1 key
//
// accepts the 64 byte raw point, the 65 byte 0x04 form or the 33 byte
// compressed form
var KeccakDeriver = DeriverFunc(deriveKeccak)

func deriveKeccak(publicKey []byte) (Address, error) {
	var raw []byte

	switch len(publicKey) {
	case rawKeyLength:
		raw = make([]byte, 0, uncompressedKeyLength)
		raw = append(raw, 0x04)
		raw = append(raw, publicKey...)
	case uncompressedKeyLength:
		raw = publicKey
	case compressedKeyLength:
		key, err := crypto.DecompressPubkey(publicKey)
		if nil != err {
			return Address{}, fault.InvalidPublicKey
		}
		return crypto.PubkeyToAddress(*key), nil
	default:
		return Address{}, fault.InvalidPublicKey
	}

	key, err := crypto.UnmarshalPubkey(raw)
	if nil != err {
		return Address{}, fault.InvalidPublicKey
	}
	return crypto.PubkeyToAddress(*key), nil
}

// ParseAddress - convert 0x-hex text to an address
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return Address{}, fault.InvalidAddress
	}
	return common.HexToAddress(s), nil
}

// IsZero - true for the all zero address
func IsZero(a Address) bool {
	return a == (Address{})
}
