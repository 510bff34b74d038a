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

// byte sizes for data entry fields
const (
	maxDataNameLength  = 64
	maxDataValueLength = 64
)

// ManageData - set or delete a named data entry on the source account
//
// a nil Value deletes the entry; a present Value (even empty) sets it
type ManageData struct {
	Name  string `json:"name"`
	Value []byte `json:"value,omitempty"`
}

// ManageDataBuilder - accumulates manage data fields
type ManageDataBuilder struct {
	source   *account.MuxedAccount
	name     string
	nameSet  bool
	value    []byte
	valueSet bool
	done     bool
}

// NewManageData - start building a manage data operation
func NewManageData() *ManageDataBuilder {
	return &ManageDataBuilder{}
}

// WithSourceAccount - set the per-operation source override
func (b *ManageDataBuilder) WithSourceAccount(source *account.MuxedAccount) *ManageDataBuilder {
	b.source = source
	return b
}

// WithName - set the required entry name
func (b *ManageDataBuilder) WithName(name string) *ManageDataBuilder {
	b.name = name
	b.nameSet = true
	return b
}

// WithValue - set the entry value
//
// a nil value (or never calling this) builds a delete; an empty
// non-nil slice is a valid value
func (b *ManageDataBuilder) WithValue(value []byte) *ManageDataBuilder {
	b.value = value
	b.valueSet = nil != value
	return b
}

// Build - validate and produce the operation
func (b *ManageDataBuilder) Build() (*Operation, error) {
	if b.done {
		return nil, fault.ErrBuilderAlreadyConsumed
	}
	b.done = true

	if !b.nameSet || 0 == len(b.name) {
		return nil, fault.ErrDataNameRequired
	}
	if len(b.name) > maxDataNameLength {
		return nil, fault.ErrDataNameTooLong
	}
	if len(b.value) > maxDataValueLength {
		return nil, fault.ErrDataValueTooLong
	}
	body := &ManageData{Name: b.name}
	if b.valueSet {
		value := make([]byte, len(b.value))
		copy(value, b.value)
		body.Value = value
	}
	return &Operation{Source: b.source, Body: body}, nil
}

func (data *ManageData) operationType() OperationType {
	return ManageDataTag
}

func (data *ManageData) pack(buffer xdr.Packed) (xdr.Packed, error) {
	if 0 == len(data.Name) {
		return nil, fault.ErrDataNameRequired
	}
	if len(data.Name) > maxDataNameLength {
		return nil, fault.ErrDataNameTooLong
	}
	if len(data.Value) > maxDataValueLength {
		return nil, fault.ErrDataValueTooLong
	}
	buffer = xdr.AppendString(buffer, data.Name)
	buffer = xdr.AppendBool(buffer, nil != data.Value)
	if nil != data.Value {
		buffer = xdr.AppendOpaque(buffer, data.Value)
	}
	return buffer, nil
}

func unpackManageData(r *xdr.Reader) (Body, error) {
	name, err := r.String(maxDataNameLength)
	if nil != err {
		return nil, err
	}
	if 0 == len(name) {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	present, err := r.Flag()
	if nil != err {
		return nil, err
	}
	body := &ManageData{Name: name}
	if present {
		value, err := r.Opaque(maxDataValueLength)
		if nil != err {
			return nil, err
		}
		body.Value = value
	}
	return body, nil
}
