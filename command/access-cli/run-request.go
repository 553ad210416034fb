// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/accessd/command/access-cli/rpccalls"
)

func runRequest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAddress(c.String("owner"))
	if nil != err {
		return err
	}

	deviceId, err := parseHex(c.String("device"), ErrInvalidDeviceId)
	if nil != err {
		return err
	}

	requestConfig := &rpccalls.RequestData{
		Owner:    owner,
		DeviceId: deviceId,
		FromTime: c.Uint64("from"),
		ToTime:   c.Uint64("to"),
		Api:      c.String("api"),
		Value:    c.String("value"),
	}

	if m.verbose {
		printJson(m.e, requestConfig)
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

	response, err := client.RequestData(s, requestConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
