// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/accessd/fault"
)

// SignatureLength - R ++ S ++ V
const SignatureLength = crypto.SignatureLength

// Signature - recoverable secp256k1 signature
type Signature []byte

// convert a binary signature to hex string for use by the fmt package (for %s)
func (signature Signature) String() string {
	return hexutil.Encode(signature)
}

// convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hexutil.Encode(signature) + ">"
}

// CallDigest - the digest a caller signs for an operation
//
//   keccak256(method ++ 0x00 ++ payload)
func CallDigest(method string, payload []byte) common.Hash {
	return crypto.Keccak256Hash([]byte(method), []byte{0x00}, payload)
}

// Sign - sign a digest
func Sign(privateKey *ecdsa.PrivateKey, digest common.Hash) (Signature, error) {
	return crypto.Sign(digest.Bytes(), privateKey)
}

// RecoverSigner - address of the key that produced the signature
//
// V may be 0/1 or 27/28
func RecoverSigner(digest common.Hash, signature Signature) (Address, error) {
	if SignatureLength != len(signature) {
		return Address{}, fault.InvalidSignature
	}

	sig := make([]byte, SignatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return Address{}, fault.InvalidSignature
	}

	key, err := crypto.SigToPub(digest.Bytes(), sig)
	if nil != err {
		return Address{}, fault.InvalidSignature
	}
	return crypto.PubkeyToAddress(*key), nil
}

// Verify - check the signature was made by the address
func Verify(address Address, digest common.Hash, signature Signature) error {
	signer, err := RecoverSigner(digest, signature)
	if nil != err {
		return err
	}
	if signer != address {
		return fault.InvalidSignature
	}
	return nil
}
