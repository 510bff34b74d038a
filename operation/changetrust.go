// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"math"

	"github.com/lumenlabs/lumend/account"
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/xdr"
)

// MaxTrustLimit - the default trust line limit when none is given
const MaxTrustLimit = int64(math.MaxInt64)

// ChangeTrust - create, adjust or delete a trust line
//
// a zero limit deletes the trust line
type ChangeTrust struct {
	Line  *Asset `json:"line"`         // the asset to trust, never native
	Limit int64  `json:"limit,string"` // maximum holdable amount
}

// ChangeTrustBuilder - accumulates change trust fields
type ChangeTrustBuilder struct {
	source   *account.MuxedAccount
	line     *Asset
	limit    int64
	limitSet bool
	done     bool
}

// NewChangeTrust - start building a change trust operation
func NewChangeTrust() *ChangeTrustBuilder {
	return &ChangeTrustBuilder{}
}

// WithSourceAccount - set the per-operation source override
func (b *ChangeTrustBuilder) WithSourceAccount(source *account.MuxedAccount) *ChangeTrustBuilder {
	b.source = source
	return b
}

// WithLine - set the asset to trust
func (b *ChangeTrustBuilder) WithLine(line *Asset) *ChangeTrustBuilder {
	b.line = line
	return b
}

// WithLimit - set the trust limit
//
// when never called the limit defaults to MaxTrustLimit
func (b *ChangeTrustBuilder) WithLimit(limit int64) *ChangeTrustBuilder {
	b.limit = limit
	b.limitSet = true
	return b
}

// Build - validate and produce the operation
func (b *ChangeTrustBuilder) Build() (*Operation, error) {
	if b.done {
		return nil, fault.ErrBuilderAlreadyConsumed
	}
	b.done = true

	if nil == b.line {
		return nil, fault.ErrTrustAssetRequired
	}
	if b.line.IsNative() {
		return nil, fault.ErrTrustAssetIsNative
	}
	limit := MaxTrustLimit
	if b.limitSet {
		if b.limit < 0 {
			return nil, fault.ErrTrustLimitOutOfRange
		}
		limit = b.limit
	}
	return &Operation{
		Source: b.source,
		Body:   &ChangeTrust{Line: b.line, Limit: limit},
	}, nil
}

func (trust *ChangeTrust) operationType() OperationType {
	return ChangeTrustTag
}

func (trust *ChangeTrust) pack(buffer xdr.Packed) (xdr.Packed, error) {
	if nil == trust.Line {
		return nil, fault.ErrTrustAssetRequired
	}
	if trust.Line.IsNative() {
		return nil, fault.ErrTrustAssetIsNative
	}
	if trust.Limit < 0 {
		return nil, fault.ErrTrustLimitOutOfRange
	}
	buffer, err := trust.Line.pack(buffer)
	if nil != err {
		return nil, err
	}
	return xdr.AppendInt64(buffer, trust.Limit), nil
}

func unpackChangeTrust(r *xdr.Reader) (Body, error) {
	line, err := unpackAsset(r)
	if nil != err {
		return nil, err
	}
	if line.IsNative() {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	limit, err := r.Int64()
	if nil != err {
		return nil, err
	}
	if limit < 0 {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	return &ChangeTrust{Line: line, Limit: limit}, nil
}
