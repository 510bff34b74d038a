// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "lumen-cli"
	app.Usage = "decode, hash, sign and verify transaction envelopes"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	networkFlag := cli.StringFlag{
		Name:  "network, n",
		Value: "test",
		Usage: " target `NETWORK` [test|public|<passphrase>]",
	}

	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode a base64 envelope to JSON",
			ArgsUsage: "ENVELOPE",
			Action:    runDecode,
		},
		{
			Name:      "hash",
			Usage:     "print the transaction id of an envelope",
			ArgsUsage: "ENVELOPE",
			Flags:     []cli.Flag{networkFlag},
			Action:    runHash,
		},
		{
			Name:      "sign",
			Usage:     "append one signature to an envelope",
			ArgsUsage: "ENVELOPE",
			Flags: []cli.Flag{
				networkFlag,
				cli.StringFlag{
					Name:  "seed, s",
					Usage: " signing `SEED` (S...)",
				},
			},
			Action: runSign,
		},
		{
			Name:      "verify",
			Usage:     "check envelope signatures against public keys",
			ArgsUsage: "ENVELOPE",
			Flags: []cli.Flag{
				networkFlag,
				cli.StringSliceFlag{
					Name:  "key, k",
					Usage: " candidate public `KEY` (G...), repeatable",
				},
			},
			Action: runVerify,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
