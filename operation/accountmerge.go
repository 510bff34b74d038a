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

// AccountMerge - transfer the whole balance and delete the source account
//
// the body is bare: just the receiving account, no enclosing struct on
// the wire
type AccountMerge struct {
	Destination *account.MuxedAccount `json:"destination"`
}

// AccountMergeBuilder - accumulates account merge fields
type AccountMergeBuilder struct {
	source      *account.MuxedAccount
	destination *account.MuxedAccount
	done        bool
}

// NewAccountMerge - start building an account merge operation
func NewAccountMerge() *AccountMergeBuilder {
	return &AccountMergeBuilder{}
}

// WithSourceAccount - set the per-operation source override
func (b *AccountMergeBuilder) WithSourceAccount(source *account.MuxedAccount) *AccountMergeBuilder {
	b.source = source
	return b
}

// WithDestination - set the account receiving the balance
func (b *AccountMergeBuilder) WithDestination(destination *account.MuxedAccount) *AccountMergeBuilder {
	b.destination = destination
	return b
}

// Build - validate and produce the operation
func (b *AccountMergeBuilder) Build() (*Operation, error) {
	if b.done {
		return nil, fault.ErrBuilderAlreadyConsumed
	}
	b.done = true

	if nil == b.destination {
		return nil, fault.ErrDestinationRequired
	}
	return &Operation{
		Source: b.source,
		Body:   &AccountMerge{Destination: b.destination},
	}, nil
}

func (merge *AccountMerge) operationType() OperationType {
	return AccountMergeTag
}

func (merge *AccountMerge) pack(buffer xdr.Packed) (xdr.Packed, error) {
	if nil == merge.Destination {
		return nil, fault.ErrDestinationRequired
	}
	return merge.Destination.Pack(buffer), nil
}

func unpackAccountMerge(r *xdr.Reader) (Body, error) {
	destination, err := account.UnpackMuxedAccount(r)
	if nil != err {
		return nil, err
	}
	return &AccountMerge{Destination: destination}, nil
}
