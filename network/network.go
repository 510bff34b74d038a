// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package network - ledger network identity
//
// A network is identified by its passphrase; the digest of the
// passphrase is mixed into every signature payload so a signature is
// never valid on more than one network.
//
// The network value is passed explicitly into signing calls - there is
// no process-wide current network.
package network

import (
	"crypto/sha256"
)

// passphrases of the well-known networks
const (
	TestPassphrase   = "Test SDF Network ; September 2015"
	PublicPassphrase = "Public Global Stellar Network ; September 2015"
)

// IDLength - bytes in a network id
const IDLength = sha256.Size

// Network - one ledger network
type Network struct {
	passphrase string
}

// New - a network from its passphrase
func New(passphrase string) *Network {
	return &Network{passphrase: passphrase}
}

// Test - the test network
func Test() *Network {
	return New(TestPassphrase)
}

// Public - the production network
func Public() *Network {
	return New(PublicPassphrase)
}

// Passphrase - the configured passphrase
func (n *Network) Passphrase() string {
	return n.passphrase
}

// ID - the digest of the passphrase
func (n *Network) ID() [IDLength]byte {
	return sha256.Sum256([]byte(n.passphrase))
}
