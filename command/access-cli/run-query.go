// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"
)

func runDevices(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAddress(c.String("owner"))
	if nil != err {
		return err
	}

	var index *uint64
	if s := c.String("index"); "" != s {
		i, err := strconv.ParseUint(s, 10, 64)
		if nil != err {
			return ErrInvalidIndex
		}
		index = &i
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetDevices(owner, index)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBans(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	requester, err := parseAddress(c.String("requester"))
	if nil != err {
		return err
	}
	owner, err := parseAddress(c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBans(requester, owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := parseTxId(c.String("txid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetRequest(txId)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRequests(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAddress(c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetRequests(owner, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("address")
	if "" == s {
		key, err := signer(m)
		if nil != err {
			return err
		}
		s = key.Address.Hex()
	}
	address, err := parseAddress(s)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(address)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
