// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"github.com/lumenlabs/lumend/account"
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/network"
	"github.com/lumenlabs/lumend/xdr"
)

// MaxSignatures - signatures one envelope may carry
const MaxSignatures = 20

// envelope type discriminants
//
// the tag is part of every signature payload, so a transaction
// signature cannot be replayed as any other envelope kind
const (
	envelopeTypeTx = 2
)

// SignatureHint - the last four bytes of the signer's public key
type SignatureHint [account.HintLength]byte

// MarshalText - hex form for use in JSON
func (hint SignatureHint) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(hint)))
	hex.Encode(b, hint[:])
	return b, nil
}

// UnmarshalText - decode the hex form for use in JSON
func (hint *SignatureHint) UnmarshalText(s []byte) error {
	if hex.EncodedLen(len(hint)) != len(s) {
		return fault.ErrInvalidKeyLength
	}
	_, err := hex.Decode(hint[:], s)
	return err
}

// DecoratedSignature - a signature with its key shortlisting hint
type DecoratedSignature struct {
	Hint      SignatureHint     `json:"hint"`
	Signature account.Signature `json:"signature"`
}

// Signer - the external signing capability
//
// assumed correct and constant time; failures propagate unchanged
type Signer interface {
	Sign(message []byte) (account.Signature, error)
	Account() *account.Account
}

// Envelope - a transaction plus its accumulated signatures
type Envelope struct {
	Transaction *Transaction         `json:"transaction"`
	Signatures  []DecoratedSignature `json:"signatures"`
}

// NewEnvelope - wrap a transaction with an empty signature list
func NewEnvelope(tx *Transaction) *Envelope {
	return &Envelope{Transaction: tx}
}

// Sign - compute the signature payload, sign it, append the signature
//
// additive: each call appends one entry, and signing twice with the
// same signer yields two entries; duplicate detection belongs to the
// caller, not this layer
func (e *Envelope) Sign(signer Signer, netw *network.Network) error {
	if len(e.Signatures) >= MaxSignatures {
		return fault.ErrTooManySignatures
	}
	hash, err := e.Transaction.Hash(netw)
	if nil != err {
		return err
	}
	signature, err := signer.Sign(hash[:])
	if nil != err {
		return err
	}
	e.Signatures = append(e.Signatures, DecoratedSignature{
		Hint:      SignatureHint(signer.Account().Hint()),
		Signature: signature,
	})
	return nil
}

// Verify - check each signature entry against the candidate keys
//
// candidates are shortlisted by hint before any cryptographic check;
// the result has one entry per signature holding the key that verified
// it, or nil where none did.  Threshold policy is the caller's concern.
func (e *Envelope) Verify(netw *network.Network, candidates []*account.Account) ([]*account.Account, error) {
	hash, err := e.Transaction.Hash(netw)
	if nil != err {
		return nil, err
	}

	verifiers := make([]*account.Account, len(e.Signatures))
signature_loop:
	for i, entry := range e.Signatures {
		for _, candidate := range candidates {
			if SignatureHint(candidate.Hint()) != entry.Hint {
				continue
			}
			if nil == candidate.CheckSignature(hash[:], entry.Signature) {
				verifiers[i] = candidate
				continue signature_loop
			}
		}
	}
	return verifiers, nil
}

// Pack - append the envelope to a buffer
//
// wire form: envelope type discriminant, the transaction, then the
// signature count and each hint/signature pair
func (e *Envelope) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if len(e.Signatures) > MaxSignatures {
		return nil, fault.ErrTooManySignatures
	}
	buffer = xdr.AppendUint32(buffer, envelopeTypeTx)
	buffer, err := e.Transaction.Pack(buffer)
	if nil != err {
		return nil, err
	}
	buffer = xdr.AppendUint32(buffer, uint32(len(e.Signatures)))
	for _, entry := range e.Signatures {
		buffer = xdr.AppendFixedOpaque(buffer, entry.Hint[:])
		buffer = xdr.AppendOpaque(buffer, entry.Signature)
	}
	return buffer, nil
}

// UnpackEnvelope - read an envelope from a reader
func UnpackEnvelope(r *xdr.Reader) (*Envelope, error) {
	envelopeType, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	if envelopeTypeTx != envelopeType {
		return nil, fault.ErrInvalidEnvelopeType
	}

	tx, err := Unpack(r)
	if nil != err {
		return nil, err
	}

	count, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	if count > MaxSignatures {
		return nil, fault.ErrLengthOutOfRange
	}
	signatures := make([]DecoratedSignature, count)
	for i := range signatures {
		hint, err := r.FixedOpaque(account.HintLength)
		if nil != err {
			return nil, err
		}
		copy(signatures[i].Hint[:], hint)
		signature, err := r.Opaque(maxSignatureLength)
		if nil != err {
			return nil, err
		}
		signatures[i].Signature = account.Signature(signature)
	}

	e := &Envelope{Transaction: tx}
	if 0 != count {
		e.Signatures = signatures
	}
	return e, nil
}

// an ed25519 signature is 64 bytes; allow nothing longer on the wire
const maxSignatureLength = 64

// EnvelopeFromBytes - decode a whole packed envelope
//
// the record must occupy the entire buffer
func EnvelopeFromBytes(record xdr.Packed) (*Envelope, error) {
	r := xdr.NewReader(record)
	e, err := UnpackEnvelope(r)
	if nil != err {
		return nil, err
	}
	if err := r.Done(); nil != err {
		return nil, err
	}
	return e, nil
}

// Base64 - the text transport form of the envelope
func (e *Envelope) Base64() (string, error) {
	record, err := e.Pack(nil)
	if nil != err {
		return "", err
	}
	return record.Base64(), nil
}

// EnvelopeFromBase64 - exact inverse of Base64
func EnvelopeFromBase64(s string) (*Envelope, error) {
	record, err := xdr.FromBase64(s)
	if nil != err {
		return nil, err
	}
	return EnvelopeFromBytes(record)
}
