// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/xdr"
)

// key type discriminants used on the wire
const (
	KeyTypeED25519      = 0
	KeyTypeMuxedED25519 = 0x100
)

// key sizes
const (
	PublicKeyLength = ed25519.PublicKeySize
	HintLength      = 4
)

// Account - an ed25519 public key identifying a ledger account
type Account struct {
	publicKey []byte
}

// AccountFromBytes - wrap a raw public key
func AccountFromBytes(publicKey []byte) (*Account, error) {
	if PublicKeyLength != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	key := make([]byte, PublicKeyLength)
	copy(key, publicKey)
	return &Account{publicKey: key}, nil
}

// AccountFromString - decode the checksummed "G..." text form
func AccountFromString(address string) (*Account, error) {
	version, payload, err := keyDecode(address)
	if nil != err {
		if fault.IsErrProcess(err) {
			return nil, err
		}
		return nil, fault.ErrCannotDecodeAccount
	}
	if accountKeyVersion != version {
		return nil, fault.ErrNotPublicKey
	}
	return AccountFromBytes(payload)
}

// Bytes - the raw public key
func (account *Account) Bytes() []byte {
	return account.publicKey
}

// String - the checksummed text form
func (account *Account) String() string {
	return keyEncode(accountKeyVersion, account.publicKey)
}

// Hint - the last four bytes of the public key
//
// lets a verifier shortlist candidate keys without attempting every
// signature against every key
func (account *Account) Hint() [HintLength]byte {
	var hint [HintLength]byte
	copy(hint[:], account.publicKey[PublicKeyLength-HintLength:])
	return hint
}

// CheckSignature - verify a signature over a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(account.publicKey), message, []byte(signature)) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// MarshalText - text form for use in JSON
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - decode the text form for use in JSON
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromString(string(s))
	if nil != err {
		return err
	}
	account.publicKey = a.publicKey
	return nil
}

// Pack - append the account id to a buffer
//
// wire form: key type discriminant then the raw public key
func (account *Account) Pack(buffer xdr.Packed) xdr.Packed {
	buffer = xdr.AppendUint32(buffer, KeyTypeED25519)
	return xdr.AppendFixedOpaque(buffer, account.publicKey)
}

// UnpackAccount - read an account id from a reader
func UnpackAccount(r *xdr.Reader) (*Account, error) {
	keyType, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	if KeyTypeED25519 != keyType {
		return nil, fault.ErrUnknownAccountType
	}
	publicKey, err := r.FixedOpaque(PublicKeyLength)
	if nil != err {
		return nil, err
	}
	return &Account{publicKey: publicKey}, nil
}
