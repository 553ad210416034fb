// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli"
)

type generateReply struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Address    string `json:"address"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := crypto.GenerateKey()
	if nil != err {
		return err
	}

	reply := generateReply{
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(privateKey)),
		PublicKey:  hex.EncodeToString(crypto.FromECDSAPub(&privateKey.PublicKey)[1:]),
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey).Hex(),
	}

	printJson(m.w, reply)
	return nil
}
