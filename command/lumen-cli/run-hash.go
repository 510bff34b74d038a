// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
)

func runHash(c *cli.Context) error {

	envelope, err := envelopeArgument(c)
	if nil != err {
		return err
	}

	netw := networkFromString(c.String("network"))
	hash, err := envelope.Transaction.Hash(netw)
	if nil != err {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s\n", hex.EncodeToString(hash[:]))
	return nil
}
