// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"crypto/ecdsa"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/accesscontrol"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/fault"
)

// Envelope - caller fields of every mutating call
//
// the signature covers the method name and the JSON of the complete
// arguments with the signature omitted
type Envelope struct {
	Caller    account.Address `json:"caller"`
	Nonce     uint64          `json:"nonce"`
	Value     string          `json:"value,omitempty"`
	Signature hexutil.Bytes   `json:"signature,omitempty"`
}

func (e *Envelope) envelope() *Envelope {
	return e
}

type signed interface {
	envelope() *Envelope
}

// digest of the arguments as they would be sent without a signature
func digest(method string, arguments signed) (common.Hash, error) {
	e := arguments.envelope()
	signature := e.Signature
	e.Signature = nil
	payload, err := json.Marshal(arguments)
	e.Signature = signature
	if nil != err {
		return common.Hash{}, err
	}
	return account.CallDigest(method, payload), nil
}

// Sign - fill in the signature of a set of arguments
func Sign(method string, arguments signed, privateKey *ecdsa.PrivateKey) error {
	d, err := digest(method, arguments)
	if nil != err {
		return err
	}
	signature, err := account.Sign(privateKey, d)
	if nil != err {
		return err
	}
	arguments.envelope().Signature = hexutil.Bytes(signature)
	return nil
}

// verify the signature and convert the envelope to a service call
func verify(method string, arguments signed) (accesscontrol.Call, error) {
	e := arguments.envelope()
	if 0 == len(e.Signature) {
		return accesscontrol.Call{}, fault.InvalidSignature
	}

	d, err := digest(method, arguments)
	if nil != err {
		return accesscontrol.Call{}, err
	}
	err = account.Verify(e.Caller, d, account.Signature(e.Signature))
	if nil != err {
		return accesscontrol.Call{}, err
	}

	value, err := parseValue(e.Value)
	if nil != err {
		return accesscontrol.Call{}, err
	}

	return accesscontrol.Call{
		From:  e.Caller,
		Nonce: e.Nonce,
		Value: value,
	}, nil
}

// decimal value, empty means zero
func parseValue(s string) (*uint256.Int, error) {
	if "" == s {
		return uint256.NewInt(0), nil
	}
	value, err := uint256.FromDecimal(s)
	if nil != err {
		return nil, fault.InvalidValue
	}
	return value, nil
}
