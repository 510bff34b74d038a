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

func runVerify(c *cli.Context) error {

	envelope, err := envelopeArgument(c)
	if nil != err {
		return err
	}

	keys := c.StringSlice("key")
	if 0 == len(keys) {
		return fmt.Errorf("at least one --key option is required")
	}
	candidates := make([]*account.Account, len(keys))
	for i, key := range keys {
		candidates[i], err = account.AccountFromString(key)
		if nil != err {
			return fmt.Errorf("key %q: %s", key, err)
		}
	}

	netw := networkFromString(c.String("network"))
	verifiers, err := envelope.Verify(netw, candidates)
	if nil != err {
		return err
	}

	allGood := true
	for i, verifier := range verifiers {
		if nil == verifier {
			fmt.Fprintf(c.App.Writer, "signature %d: NOT VERIFIED\n", i)
			allGood = false
		} else {
			fmt.Fprintf(c.App.Writer, "signature %d: verified by %s\n", i, verifier)
		}
	}
	if !allGood {
		return fmt.Errorf("one or more signatures did not verify")
	}
	return nil
}
