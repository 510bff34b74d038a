// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"encoding/json"

	"github.com/lumenlabs/lumend/account"
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/xdr"
)

// OperationType - wire discriminant for operation kinds
type OperationType uint32

// enumerate the operation kinds
//
// values are fixed by the ledger protocol and must never be renumbered
const (
	CreateAccountTag OperationType = 0
	PaymentTag       OperationType = 1
	ChangeTrustTag   OperationType = 6
	AccountMergeTag  OperationType = 8
	InflationTag     OperationType = 9
	ManageDataTag    OperationType = 10
	BumpSequenceTag  OperationType = 11
)

// String - the name of an operation kind
func (operationType OperationType) String() string {
	switch operationType {
	case CreateAccountTag:
		return "CreateAccount"
	case PaymentTag:
		return "Payment"
	case ChangeTrustTag:
		return "ChangeTrust"
	case AccountMergeTag:
		return "AccountMerge"
	case InflationTag:
		return "Inflation"
	case ManageDataTag:
		return "ManageData"
	case BumpSequenceTag:
		return "BumpSequence"
	default:
		return "*unknown*"
	}
}

// Body - the kind-specific payload of an operation
//
// implementations live in this package only; the protocol's operation
// set is closed
type Body interface {
	operationType() OperationType
	pack(buffer xdr.Packed) (xdr.Packed, error)
}

// Operation - one atomic instruction within a transaction
//
// Source, when present, overrides the transaction source account for
// this operation only
type Operation struct {
	Source *account.MuxedAccount `json:"source,omitempty"`
	Body   Body                  `json:"body"`
}

// Type - the operation kind
func (op *Operation) Type() OperationType {
	return op.Body.operationType()
}

// Pack - append the operation to a buffer
//
// wire form: optional source account, four byte kind discriminant,
// then the kind-specific body
func (op *Operation) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	buffer = xdr.AppendBool(buffer, nil != op.Source)
	if nil != op.Source {
		buffer = op.Source.Pack(buffer)
	}
	buffer = xdr.AppendUint32(buffer, uint32(op.Body.operationType()))
	return op.Body.pack(buffer)
}

// dispatch table: wire discriminant to body unpacker
var unpackers = map[OperationType]func(*xdr.Reader) (Body, error){
	CreateAccountTag: unpackCreateAccount,
	PaymentTag:       unpackPayment,
	ChangeTrustTag:   unpackChangeTrust,
	AccountMergeTag:  unpackAccountMerge,
	InflationTag:     unpackInflation,
	ManageDataTag:    unpackManageData,
	BumpSequenceTag:  unpackBumpSequence,
}

// Unpack - read one operation from a reader
//
// the buffer is untrusted: body unpackers re-validate the invariants
// the builders enforce, since well-formed bytes can still carry
// protocol-illegal values
func Unpack(r *xdr.Reader) (*Operation, error) {
	present, err := r.Flag()
	if nil != err {
		return nil, err
	}
	var source *account.MuxedAccount
	if present {
		source, err = account.UnpackMuxedAccount(r)
		if nil != err {
			return nil, err
		}
	}

	tag, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	unpack, ok := unpackers[OperationType(tag)]
	if !ok {
		return nil, fault.ErrUnknownOperationType
	}
	body, err := unpack(r)
	if nil != err {
		return nil, err
	}
	return &Operation{Source: source, Body: body}, nil
}

// MarshalJSON - tag the body with its kind name
func (op Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string                `json:"type"`
		Source *account.MuxedAccount `json:"source,omitempty"`
		Body   Body                  `json:"body,omitempty"`
	}{
		Type:   op.Body.operationType().String(),
		Source: op.Source,
		Body:   op.Body,
	})
}
