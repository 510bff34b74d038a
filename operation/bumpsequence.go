// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/lumenlabs/lumend/account"
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/xdr"
)

// BumpSequence - push the source account's sequence number forward
//
// sequence numbers are monotonic, so a negative target is never
// protocol-legal
type BumpSequence struct {
	BumpTo int64 `json:"bumpTo,string"` // target sequence value
}

// BumpSequenceBuilder - accumulates bump sequence fields
//
// single use: Build consumes the builder
type BumpSequenceBuilder struct {
	source    *account.MuxedAccount
	bumpTo    int64
	bumpToSet bool
	done      bool
}

// NewBumpSequence - start building a bump sequence operation
func NewBumpSequence() *BumpSequenceBuilder {
	return &BumpSequenceBuilder{}
}

// WithSourceAccount - set the per-operation source override
//
// overwrites silently if called twice
func (b *BumpSequenceBuilder) WithSourceAccount(source *account.MuxedAccount) *BumpSequenceBuilder {
	b.source = source
	return b
}

// WithBumpTo - set the required target sequence value
//
// overwrites silently if called twice
func (b *BumpSequenceBuilder) WithBumpTo(bumpTo int64) *BumpSequenceBuilder {
	b.bumpTo = bumpTo
	b.bumpToSet = true
	return b
}

// Build - validate and produce the operation
func (b *BumpSequenceBuilder) Build() (*Operation, error) {
	if b.done {
		return nil, fault.ErrBuilderAlreadyConsumed
	}
	b.done = true

	if !b.bumpToSet {
		return nil, fault.ErrBumpToRequired
	}
	if b.bumpTo < 0 {
		return nil, fault.ErrBumpToOutOfRange
	}
	return &Operation{
		Source: b.source,
		Body:   &BumpSequence{BumpTo: b.bumpTo},
	}, nil
}

func (bump *BumpSequence) operationType() OperationType {
	return BumpSequenceTag
}

// body wire form: just the signed 64 bit target
func (bump *BumpSequence) pack(buffer xdr.Packed) (xdr.Packed, error) {
	if bump.BumpTo < 0 {
		return nil, fault.ErrBumpToOutOfRange
	}
	return xdr.AppendInt64(buffer, bump.BumpTo), nil
}

func unpackBumpSequence(r *xdr.Reader) (Body, error) {
	bumpTo, err := r.Int64()
	if nil != err {
		return nil, err
	}
	// the builder forbids this, but hostile bytes can still encode it
	if bumpTo < 0 {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	return &BumpSequence{BumpTo: bumpTo}, nil
}
