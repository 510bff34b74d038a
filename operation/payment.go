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

// Payment - move an amount of an asset to another account
type Payment struct {
	Destination *account.MuxedAccount `json:"destination"`   // receiving account
	Asset       *Asset                `json:"asset"`         // what is being sent
	Amount      int64                 `json:"amount,string"` // in base units, > 0
}

// PaymentBuilder - accumulates payment fields
type PaymentBuilder struct {
	source      *account.MuxedAccount
	destination *account.MuxedAccount
	asset       *Asset
	amount      int64
	amountSet   bool
	done        bool
}

// NewPayment - start building a payment operation
func NewPayment() *PaymentBuilder {
	return &PaymentBuilder{}
}

// WithSourceAccount - set the per-operation source override
func (b *PaymentBuilder) WithSourceAccount(source *account.MuxedAccount) *PaymentBuilder {
	b.source = source
	return b
}

// WithDestination - set the receiving account
func (b *PaymentBuilder) WithDestination(destination *account.MuxedAccount) *PaymentBuilder {
	b.destination = destination
	return b
}

// WithAsset - set the asset to send
func (b *PaymentBuilder) WithAsset(asset *Asset) *PaymentBuilder {
	b.asset = asset
	return b
}

// WithAmount - set the amount to send
func (b *PaymentBuilder) WithAmount(amount int64) *PaymentBuilder {
	b.amount = amount
	b.amountSet = true
	return b
}

// Build - validate and produce the operation
func (b *PaymentBuilder) Build() (*Operation, error) {
	if b.done {
		return nil, fault.ErrBuilderAlreadyConsumed
	}
	b.done = true

	if nil == b.destination {
		return nil, fault.ErrDestinationRequired
	}
	if nil == b.asset {
		return nil, fault.ErrPaymentAssetRequired
	}
	if !b.amountSet {
		return nil, fault.ErrPaymentAmountRequired
	}
	if b.amount <= 0 {
		return nil, fault.ErrPaymentAmountOutOfRange
	}
	return &Operation{
		Source: b.source,
		Body: &Payment{
			Destination: b.destination,
			Asset:       b.asset,
			Amount:      b.amount,
		},
	}, nil
}

func (payment *Payment) operationType() OperationType {
	return PaymentTag
}

func (payment *Payment) pack(buffer xdr.Packed) (xdr.Packed, error) {
	if nil == payment.Destination {
		return nil, fault.ErrDestinationRequired
	}
	if nil == payment.Asset {
		return nil, fault.ErrPaymentAssetRequired
	}
	if payment.Amount <= 0 {
		return nil, fault.ErrPaymentAmountOutOfRange
	}
	buffer = payment.Destination.Pack(buffer)
	buffer, err := payment.Asset.pack(buffer)
	if nil != err {
		return nil, err
	}
	return xdr.AppendInt64(buffer, payment.Amount), nil
}

func unpackPayment(r *xdr.Reader) (Body, error) {
	destination, err := account.UnpackMuxedAccount(r)
	if nil != err {
		return nil, err
	}
	asset, err := unpackAsset(r)
	if nil != err {
		return nil, err
	}
	amount, err := r.Int64()
	if nil != err {
		return nil, err
	}
	if amount <= 0 {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	return &Payment{
		Destination: destination,
		Asset:       asset,
		Amount:      amount,
	}, nil
}
