// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	key     string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "access-cli"
	app.Usage = "client for the accessd device data service"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " accessd RPC `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " hex secp256k1 private `KEY` for signed calls",
			EnvVar: "ACCESS_CLI_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new account key",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "register",
			Usage:     "register a device for the key's account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "device, d",
					Value: "",
					Usage: "*device id `HEX`",
				},
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*daily price `UNITS`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "request",
			Usage:     "request data from an owner's device",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "device, d",
					Value: "",
					Usage: "*device id `HEX`",
				},
				cli.Uint64Flag{
					Name:  "from, f",
					Value: 0,
					Usage: "*start of the window `UNIX-SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "to, t",
					Value: 0,
					Usage: "*end of the window `UNIX-SECONDS`",
				},
				cli.StringFlag{
					Name:  "api, a",
					Value: "",
					Usage: " data api `NAME`",
				},
				cli.StringFlag{
					Name:  "value, m",
					Value: "0",
					Usage: " escrow payment `UNITS`",
				},
			},
			Action: runRequest,
		},
		{
			Name:      "sent",
			Usage:     "owner confirms the data was delivered",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "requester, r",
					Value: "",
					Usage: "*requester `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*request transaction id `TXID`",
				},
				cli.StringFlag{
					Name:  "hash, s",
					Value: "",
					Usage: "*hash of the delivered data `HEX`",
				},
			},
			Action: runSent,
		},
		{
			Name:      "received",
			Usage:     "requester confirms receipt and releases payment",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*request transaction id `TXID`",
				},
			},
			Action: runReceived,
		},
		{
			Name:      "reclaim",
			Usage:     "requester recovers the escrow of an expired request",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*request transaction id `TXID`",
				},
			},
			Action: runReclaim,
		},
		{
			Name:      "device",
			Usage:     "list the devices of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "index, i",
					Value: "",
					Usage: " only the device at `INDEX`",
				},
			},
			Action: runDevices,
		},
		{
			Name:      "bans",
			Usage:     "ban history of a requester against an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "requester, r",
					Value: "",
					Usage: "*requester `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
			},
			Action: runBans,
		},
		{
			Name:      "status",
			Usage:     "show a data request",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*request transaction id `TXID`",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "requests",
			Usage:     "list requests addressed to an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first request `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum `NUMBER` of requests",
				},
			},
			Action: runRequests,
		},
		{
			Name:      "balance",
			Usage:     "show an account balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " account `ADDRESS` [default: the key's account]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "info",
			Usage:     "display accessd status",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:   "version",
			Usage:  "display access-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			key:     c.GlobalString("key"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
