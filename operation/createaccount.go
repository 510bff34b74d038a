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

// CreateAccount - fund a new ledger account
type CreateAccount struct {
	Destination     *account.Account `json:"destination"`            // the account to create
	StartingBalance int64            `json:"startingBalance,string"` // initial balance in base units
}

// CreateAccountBuilder - accumulates create account fields
type CreateAccountBuilder struct {
	source          *account.MuxedAccount
	destination     *account.Account
	startingBalance int64
	balanceSet      bool
	done            bool
}

// NewCreateAccount - start building a create account operation
func NewCreateAccount() *CreateAccountBuilder {
	return &CreateAccountBuilder{}
}

// WithSourceAccount - set the per-operation source override
func (b *CreateAccountBuilder) WithSourceAccount(source *account.MuxedAccount) *CreateAccountBuilder {
	b.source = source
	return b
}

// WithDestination - set the account to create
func (b *CreateAccountBuilder) WithDestination(destination *account.Account) *CreateAccountBuilder {
	b.destination = destination
	return b
}

// WithStartingBalance - set the initial balance
func (b *CreateAccountBuilder) WithStartingBalance(balance int64) *CreateAccountBuilder {
	b.startingBalance = balance
	b.balanceSet = true
	return b
}

// Build - validate and produce the operation
func (b *CreateAccountBuilder) Build() (*Operation, error) {
	if b.done {
		return nil, fault.ErrBuilderAlreadyConsumed
	}
	b.done = true

	if nil == b.destination {
		return nil, fault.ErrDestinationRequired
	}
	if !b.balanceSet {
		return nil, fault.ErrStartingBalanceRequired
	}
	if b.startingBalance < 0 {
		return nil, fault.ErrBalanceOutOfRange
	}
	return &Operation{
		Source: b.source,
		Body: &CreateAccount{
			Destination:     b.destination,
			StartingBalance: b.startingBalance,
		},
	}, nil
}

func (create *CreateAccount) operationType() OperationType {
	return CreateAccountTag
}

func (create *CreateAccount) pack(buffer xdr.Packed) (xdr.Packed, error) {
	if nil == create.Destination {
		return nil, fault.ErrDestinationRequired
	}
	if create.StartingBalance < 0 {
		return nil, fault.ErrBalanceOutOfRange
	}
	buffer = create.Destination.Pack(buffer)
	return xdr.AppendInt64(buffer, create.StartingBalance), nil
}

func unpackCreateAccount(r *xdr.Reader) (Body, error) {
	destination, err := account.UnpackAccount(r)
	if nil != err {
		return nil, err
	}
	balance, err := r.Int64()
	if nil != err {
		return nil, err
	}
	if balance < 0 {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	return &CreateAccount{
		Destination:     destination,
		StartingBalance: balance,
	}, nil
}
