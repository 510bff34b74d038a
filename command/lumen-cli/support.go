// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/lumenlabs/lumend/network"
	"github.com/lumenlabs/lumend/transaction"
)

// resolve the network flag to a network value
//
// the well-known names are accepted; anything else is taken as a
// literal passphrase
func networkFromString(name string) *network.Network {
	switch name {
	case "test":
		return network.Test()
	case "public":
		return network.Public()
	default:
		return network.New(name)
	}
}

// fetch the single envelope argument of a command
func envelopeArgument(c *cli.Context) (*transaction.Envelope, error) {
	encoded := c.Args().Get(0)
	if "" == encoded {
		return nil, fmt.Errorf("missing ENVELOPE argument")
	}
	return transaction.EnvelopeFromBase64(encoded)
}
