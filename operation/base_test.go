// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation_test

import (
	"testing"

	"github.com/lumenlabs/lumend/account"
)

// fixed public keys for tests
var (
	issuerPublicKey = []byte{
		0x25, 0xca, 0xf1, 0xda, 0x0f, 0xc7, 0x6e, 0xcf,
		0xe8, 0x84, 0x5e, 0x42, 0x54, 0x51, 0xbb, 0x07,
		0x92, 0x49, 0x48, 0x94, 0x7e, 0x3a, 0xa0, 0xca,
		0xcc, 0x31, 0x8a, 0xed, 0xd2, 0x87, 0x64, 0x7e,
	}
	recipientPublicKey = []byte{
		0xe0, 0xdc, 0x6d, 0xe1, 0x72, 0x5c, 0xac, 0x66,
		0x51, 0x62, 0xb5, 0x2f, 0xac, 0xe7, 0x35, 0xb2,
		0x8a, 0x22, 0x43, 0xe4, 0x1d, 0x12, 0x4d, 0x6c,
		0xb9, 0x2d, 0x70, 0xa3, 0xea, 0x2e, 0x72, 0xc5,
	}
)

// wrap a raw public key, failing the test on error
func makeAccount(t *testing.T, publicKey []byte) *account.Account {
	t.Helper()
	a, err := account.AccountFromBytes(publicKey)
	if nil != err {
		t.Fatalf("make account error: %s", err)
	}
	return a
}
