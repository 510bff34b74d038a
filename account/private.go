// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/lumenlabs/lumend/fault"
)

// SeedLength - raw entropy bytes behind a seed
const SeedLength = 32

// PrivateKey - the signing side of an account
type PrivateKey struct {
	privateKey ed25519.PrivateKey
}

// PrivateKeyFromSeed - decode the checksummed "S..." text form
func PrivateKeyFromSeed(seed string) (*PrivateKey, error) {
	version, payload, err := keyDecode(seed)
	if nil != err {
		if fault.IsErrProcess(err) {
			return nil, err
		}
		return nil, fault.ErrCannotDecodeSeed
	}
	if seedKeyVersion != version {
		return nil, fault.ErrNotSeed
	}
	return PrivateKeyFromSeedBytes(payload)
}

// PrivateKeyFromSeedBytes - derive the key pair from raw seed entropy
func PrivateKeyFromSeedBytes(seed []byte) (*PrivateKey, error) {
	if SeedLength != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// Account - the public side of this key
func (p *PrivateKey) Account() *Account {
	publicKey := make([]byte, PublicKeyLength)
	copy(publicKey, p.privateKey[SeedLength:])
	return &Account{publicKey: publicKey}
}

// Sign - sign a message
//
// the caller supplies exactly the bytes to be signed; any hashing of a
// larger payload happens before this point
func (p *PrivateKey) Sign(message []byte) (Signature, error) {
	return Signature(ed25519.Sign(p.privateKey, message)), nil
}

// String - the checksummed seed text form
func (p *PrivateKey) String() string {
	return keyEncode(seedKeyVersion, p.privateKey.Seed())
}
