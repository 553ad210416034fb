// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runSent(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	requester, err := parseAddress(c.String("requester"))
	if nil != err {
		return err
	}
	txId, err := parseTxId(c.String("txid"))
	if nil != err {
		return err
	}
	dataHash, err := parseHex(c.String("hash"), ErrInvalidHash)
	if nil != err {
		return err
	}

	s, err := signer(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ConfirmSentData(s, requester, txId, dataHash)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runReceived(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAddress(c.String("owner"))
	if nil != err {
		return err
	}
	txId, err := parseTxId(c.String("txid"))
	if nil != err {
		return err
	}

	s, err := signer(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ConfirmReceivedData(s, owner, txId)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runReclaim(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := parseTxId(c.String("txid"))
	if nil != err {
		return err
	}

	s, err := signer(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Reclaim(s, txId)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
