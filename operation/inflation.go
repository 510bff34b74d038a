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

// Inflation - run the network inflation process
//
// no fields: the discriminant alone is the whole body
type Inflation struct {
}

// InflationBuilder - nothing to accumulate beyond the source override
type InflationBuilder struct {
	source *account.MuxedAccount
	done   bool
}

// NewInflation - start building an inflation operation
func NewInflation() *InflationBuilder {
	return &InflationBuilder{}
}

// WithSourceAccount - set the per-operation source override
func (b *InflationBuilder) WithSourceAccount(source *account.MuxedAccount) *InflationBuilder {
	b.source = source
	return b
}

// Build - produce the operation
func (b *InflationBuilder) Build() (*Operation, error) {
	if b.done {
		return nil, fault.ErrBuilderAlreadyConsumed
	}
	b.done = true

	return &Operation{
		Source: b.source,
		Body:   &Inflation{},
	}, nil
}

func (inflation *Inflation) operationType() OperationType {
	return InflationTag
}

func (inflation *Inflation) pack(buffer xdr.Packed) (xdr.Packed, error) {
	return buffer, nil
}

func unpackInflation(r *xdr.Reader) (Body, error) {
	return &Inflation{}, nil
}
