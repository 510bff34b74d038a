// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runDecode(c *cli.Context) error {

	envelope, err := envelopeArgument(c)
	if nil != err {
		return err
	}

	return printJson(c.App.Writer, envelope)
}
