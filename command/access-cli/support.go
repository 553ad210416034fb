// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/command/access-cli/rpccalls"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func signer(m *metadata) (*rpccalls.Signer, error) {
	if "" == m.key {
		return nil, ErrMissingKey
	}
	return rpccalls.NewSigner(m.key)
}

func parseAddress(s string) (account.Address, error) {
	a, err := account.ParseAddress(s)
	if nil != err {
		return account.Address{}, ErrInvalidAddress
	}
	return a, nil
}

func parseHex(s string, e error) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if nil != err || 0 == len(b) {
		return nil, e
	}
	return b, nil
}

func parseTxId(s string) (common.Hash, error) {
	b, err := parseHex(s, ErrInvalidTxId)
	if nil != err {
		return common.Hash{}, err
	}
	if common.HashLength != len(b) {
		return common.Hash{}, ErrInvalidTxId
	}
	return common.BytesToHash(b), nil
}
