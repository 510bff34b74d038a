// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/sha256"
	"math"

	"github.com/lumenlabs/lumend/account"
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/network"
	"github.com/lumenlabs/lumend/operation"
	"github.com/lumenlabs/lumend/xdr"
)

// protocol limits
const (
	MaxOperations = 100 // operations in one transaction
	MinBaseFee    = 100 // per-operation fee floor in base units
)

// Transaction - an ordered batch of operations from one source account
//
// immutable by convention once built; only the Builder validates, so
// callers constructing the struct directly carry the invariants
// themselves
type Transaction struct {
	Source     *account.MuxedAccount  `json:"source"`
	Fee        uint32                 `json:"fee"`
	Sequence   int64                  `json:"sequence,string"`
	TimeBounds *TimeBounds            `json:"timeBounds,omitempty"`
	Memo       Memo                   `json:"memo"`
	Operations []*operation.Operation `json:"operations"`
}

// Builder - accumulates transaction fields
//
// single use: Build consumes the builder.  The first error sticks and
// is reported by Build, so calls chain without intermediate checks.
type Builder struct {
	source     *account.MuxedAccount
	sequence   int64
	baseFee    uint32
	timeBounds *TimeBounds
	memo       Memo
	operations []*operation.Operation
	err        error
	done       bool
}

// NewBuilder - start assembling a transaction
//
// the fee is given per operation; the total is computed at Build
func NewBuilder(source *account.MuxedAccount, sequence int64, baseFee uint32) *Builder {
	return &Builder{
		source:   source,
		sequence: sequence,
		baseFee:  baseFee,
	}
}

// AddOperation - append one operation
func (b *Builder) AddOperation(op *operation.Operation) *Builder {
	if nil != b.err {
		return b
	}
	if len(b.operations) >= MaxOperations {
		b.err = fault.ErrTooManyOperations
		return b
	}
	b.operations = append(b.operations, op)
	return b
}

// WithMemo - set the memo
func (b *Builder) WithMemo(memo Memo) *Builder {
	b.memo = memo
	return b
}

// WithTimeBounds - set the validity window
func (b *Builder) WithTimeBounds(timeBounds *TimeBounds) *Builder {
	b.timeBounds = timeBounds
	return b
}

// Build - validate and produce the transaction
func (b *Builder) Build() (*Transaction, error) {
	if b.done {
		return nil, fault.ErrBuilderAlreadyConsumed
	}
	b.done = true

	if nil != b.err {
		return nil, b.err
	}
	if nil == b.source {
		return nil, fault.ErrSourceAccountRequired
	}
	if b.baseFee < MinBaseFee {
		return nil, fault.ErrBaseFeeTooLow
	}
	if 0 == len(b.operations) {
		return nil, fault.ErrNoOperations
	}

	totalFee := uint64(b.baseFee) * uint64(len(b.operations))
	if totalFee > math.MaxUint32 {
		return nil, fault.ErrFeeOverflow
	}

	return &Transaction{
		Source:     b.source,
		Fee:        uint32(totalFee),
		Sequence:   b.sequence,
		TimeBounds: b.timeBounds,
		Memo:       b.memo,
		Operations: b.operations,
	}, nil
}

// Pack - append the transaction to a buffer
//
// wire form: source, fee, sequence, optional time bounds, memo,
// operation count then each operation, and the (empty) extension point
func (tx *Transaction) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if nil == tx.Source {
		return nil, fault.ErrSourceAccountRequired
	}
	if 0 == len(tx.Operations) {
		return nil, fault.ErrNoOperations
	}
	if len(tx.Operations) > MaxOperations {
		return nil, fault.ErrTooManyOperations
	}

	buffer = tx.Source.Pack(buffer)
	buffer = xdr.AppendUint32(buffer, tx.Fee)
	buffer = xdr.AppendInt64(buffer, tx.Sequence)

	buffer = xdr.AppendBool(buffer, nil != tx.TimeBounds)
	if nil != tx.TimeBounds {
		buffer = tx.TimeBounds.pack(buffer)
	}

	buffer, err := tx.Memo.pack(buffer)
	if nil != err {
		return nil, err
	}

	buffer = xdr.AppendUint32(buffer, uint32(len(tx.Operations)))
	for _, op := range tx.Operations {
		buffer, err = op.Pack(buffer)
		if nil != err {
			return nil, err
		}
	}

	// extension point, version zero
	return xdr.AppendUint32(buffer, 0), nil
}

// Unpack - read a transaction from a reader
func Unpack(r *xdr.Reader) (*Transaction, error) {
	source, err := account.UnpackMuxedAccount(r)
	if nil != err {
		return nil, err
	}
	fee, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	sequence, err := r.Int64()
	if nil != err {
		return nil, err
	}

	present, err := r.Flag()
	if nil != err {
		return nil, err
	}
	var timeBounds *TimeBounds
	if present {
		timeBounds, err = unpackTimeBounds(r)
		if nil != err {
			return nil, err
		}
	}

	memo, err := unpackMemo(r)
	if nil != err {
		return nil, err
	}

	count, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	if count > MaxOperations {
		return nil, fault.ErrLengthOutOfRange
	}
	if 0 == count {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	operations := make([]*operation.Operation, count)
	for i := range operations {
		operations[i], err = operation.Unpack(r)
		if nil != err {
			return nil, err
		}
	}

	ext, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	if 0 != ext {
		return nil, fault.ErrUnsupportedExtension
	}

	return &Transaction{
		Source:     source,
		Fee:        fee,
		Sequence:   sequence,
		TimeBounds: timeBounds,
		Memo:       memo,
		Operations: operations,
	}, nil
}

// Hash - the digest a signer signs: the transaction id
//
// payload: network id ++ envelope type tag ++ packed transaction, so a
// signature binds both the network and the envelope interpretation
func (tx *Transaction) Hash(netw *network.Network) ([sha256.Size]byte, error) {
	id := netw.ID()
	payload := xdr.Packed(id[:])
	payload = xdr.AppendUint32(payload, envelopeTypeTx)
	payload, err := tx.Pack(payload)
	if nil != err {
		return [sha256.Size]byte{}, err
	}
	return sha256.Sum256(payload), nil
}
