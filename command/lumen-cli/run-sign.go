// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/lumenlabs/lumend/account"
)

func runSign(c *cli.Context) error {

	envelope, err := envelopeArgument(c)
	if nil != err {
		return err
	}

	seed := c.String("seed")
	if "" == seed {
		return fmt.Errorf("missing --seed option")
	}
	signer, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		return err
	}

	netw := networkFromString(c.String("network"))
	err = envelope.Sign(signer, netw)
	if nil != err {
		return err
	}

	encoded, err := envelope.Base64()
	if nil != err {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\n", encoded)
	return nil
}
