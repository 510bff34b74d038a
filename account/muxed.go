// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/xdr"
)

// MuxedAccount - an account optionally carrying a multiplexing id
//
// the form every transaction and operation source takes on the wire;
// the id lets one ledger account be shared by many logical users
type MuxedAccount struct {
	account *Account
	id      uint64
	muxed   bool
}

// NewMuxedAccount - a plain account source with no multiplexing id
func NewMuxedAccount(a *Account) *MuxedAccount {
	return &MuxedAccount{account: a}
}

// NewMuxedAccountID - an account source with a multiplexing id
func NewMuxedAccountID(a *Account, id uint64) *MuxedAccount {
	return &MuxedAccount{account: a, id: id, muxed: true}
}

// MuxedAccountFromString - decode either the "G..." or "M..." text form
func MuxedAccountFromString(address string) (*MuxedAccount, error) {
	version, payload, err := keyDecode(address)
	if nil != err {
		if fault.IsErrProcess(err) {
			return nil, err
		}
		return nil, fault.ErrCannotDecodeAccount
	}
	switch version {
	case accountKeyVersion:
		a, err := AccountFromBytes(payload)
		if nil != err {
			return nil, err
		}
		return NewMuxedAccount(a), nil

	case muxedKeyVersion:
		if PublicKeyLength+8 != len(payload) {
			return nil, fault.ErrInvalidKeyLength
		}
		a, err := AccountFromBytes(payload[:PublicKeyLength])
		if nil != err {
			return nil, err
		}
		id := uint64(0)
		for _, b := range payload[PublicKeyLength:] {
			id = id<<8 | uint64(b)
		}
		return NewMuxedAccountID(a, id), nil

	default:
		return nil, fault.ErrNotPublicKey
	}
}

// Account - the underlying ledger account
func (m *MuxedAccount) Account() *Account {
	return m.account
}

// ID - the multiplexing id, if any
func (m *MuxedAccount) ID() (uint64, bool) {
	return m.id, m.muxed
}

// String - the checksummed text form; "M..." when an id is present
func (m *MuxedAccount) String() string {
	if !m.muxed {
		return m.account.String()
	}
	payload := make([]byte, 0, PublicKeyLength+8)
	payload = append(payload, m.account.publicKey...)
	for shift := 56; shift >= 0; shift -= 8 {
		payload = append(payload, byte(m.id>>uint(shift)))
	}
	return keyEncode(muxedKeyVersion, payload)
}

// MarshalText - text form for use in JSON
func (m MuxedAccount) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText - decode the text form for use in JSON
func (m *MuxedAccount) UnmarshalText(s []byte) error {
	decoded, err := MuxedAccountFromString(string(s))
	if nil != err {
		return err
	}
	*m = *decoded
	return nil
}

// Pack - append the muxed account to a buffer
//
// wire form: key type discriminant, the id for the muxed variant,
// then the raw public key
func (m *MuxedAccount) Pack(buffer xdr.Packed) xdr.Packed {
	if m.muxed {
		buffer = xdr.AppendUint32(buffer, KeyTypeMuxedED25519)
		buffer = xdr.AppendUint64(buffer, m.id)
	} else {
		buffer = xdr.AppendUint32(buffer, KeyTypeED25519)
	}
	return xdr.AppendFixedOpaque(buffer, m.account.publicKey)
}

// UnpackMuxedAccount - read a muxed account from a reader
func UnpackMuxedAccount(r *xdr.Reader) (*MuxedAccount, error) {
	keyType, err := r.Uint32()
	if nil != err {
		return nil, err
	}

	muxed := false
	id := uint64(0)
	switch keyType {
	case KeyTypeED25519:
	case KeyTypeMuxedED25519:
		muxed = true
		id, err = r.Uint64()
		if nil != err {
			return nil, err
		}
	default:
		return nil, fault.ErrUnknownAccountType
	}

	publicKey, err := r.FixedOpaque(PublicKeyLength)
	if nil != err {
		return nil, err
	}
	return &MuxedAccount{
		account: &Account{publicKey: publicKey},
		id:      id,
		muxed:   muxed,
	}, nil
}
