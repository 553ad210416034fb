// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	deviceId, err := parseHex(c.String("device"), ErrInvalidDeviceId)
	if nil != err {
		return err
	}

	price := c.String("price")
	if "" == price {
		return ErrMissingPrice
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

	response, err := client.RegisterDevice(s, deviceId, price)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
