// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/lumenlabs/lumend/account"
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/operation"
	"github.com/lumenlabs/lumend/xdr"
)

// pack one operation and check it survives the wire unchanged, both
// as a value and byte for byte
func roundTrip(t *testing.T, op *operation.Operation) {
	t.Helper()

	packed, err := op.Pack(nil)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	r := xdr.NewReader(packed)
	unpacked, err := operation.Unpack(r)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if err := r.Done(); nil != err {
		t.Fatalf("done error: %s", err)
	}

	if !reflect.DeepEqual(op, unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", op, unpacked)
	}

	repacked, err := unpacked.Pack(nil)
	if nil != err {
		t.Fatalf("repack error: %s", err)
	}
	if !bytes.Equal(packed, repacked) {
		t.Fatalf("repack: %x  expected: %x", repacked, packed)
	}
}

func TestPackCreateAccount(t *testing.T) {

	op, err := operation.NewCreateAccount().
		WithDestination(makeAccount(t, recipientPublicKey)).
		WithStartingBalance(5000000000).
		Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	roundTrip(t, op)

	// zero is a legal starting balance
	op, err = operation.NewCreateAccount().
		WithDestination(makeAccount(t, recipientPublicKey)).
		WithStartingBalance(0).
		Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	roundTrip(t, op)
}

func TestCreateAccountValidation(t *testing.T) {

	_, err := operation.NewCreateAccount().
		WithStartingBalance(1).
		Build()
	if fault.ErrDestinationRequired != err {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = operation.NewCreateAccount().
		WithDestination(makeAccount(t, recipientPublicKey)).
		Build()
	if fault.ErrStartingBalanceRequired != err {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = operation.NewCreateAccount().
		WithDestination(makeAccount(t, recipientPublicKey)).
		WithStartingBalance(-1).
		Build()
	if fault.ErrBalanceOutOfRange != err {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPackPayment(t *testing.T) {

	asset, err := operation.CreditAsset("USD", makeAccount(t, issuerPublicKey))
	if nil != err {
		t.Fatalf("asset error: %s", err)
	}

	items := []*operation.Asset{
		operation.NativeAsset(),
		asset,
	}

	for i, a := range items {
		op, err := operation.NewPayment().
			WithDestination(account.NewMuxedAccount(makeAccount(t, recipientPublicKey))).
			WithAsset(a).
			WithAmount(123456789).
			Build()
		if nil != err {
			t.Fatalf("%d: build error: %s", i, err)
		}
		roundTrip(t, op)
	}

	// a muxed destination
	op, err := operation.NewPayment().
		WithDestination(account.NewMuxedAccountID(makeAccount(t, recipientPublicKey), 42)).
		WithAsset(operation.NativeAsset()).
		WithAmount(1).
		Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	roundTrip(t, op)
}

func TestPaymentValidation(t *testing.T) {

	destination := account.NewMuxedAccount(makeAccount(t, recipientPublicKey))

	_, err := operation.NewPayment().
		WithAsset(operation.NativeAsset()).
		WithAmount(1).
		Build()
	if fault.ErrDestinationRequired != err {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = operation.NewPayment().
		WithDestination(destination).
		WithAmount(1).
		Build()
	if fault.ErrPaymentAssetRequired != err {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = operation.NewPayment().
		WithDestination(destination).
		WithAsset(operation.NativeAsset()).
		Build()
	if fault.ErrPaymentAmountRequired != err {
		t.Fatalf("unexpected error: %v", err)
	}

	// a payment of nothing moves nothing
	_, err = operation.NewPayment().
		WithDestination(destination).
		WithAsset(operation.NativeAsset()).
		WithAmount(0).
		Build()
	if fault.ErrPaymentAmountOutOfRange != err {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPackChangeTrust(t *testing.T) {

	line, err := operation.CreditAsset("LONGCODE2020", makeAccount(t, issuerPublicKey))
	if nil != err {
		t.Fatalf("asset error: %s", err)
	}

	op, err := operation.NewChangeTrust().
		WithLine(line).
		WithLimit(1000000).
		Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	roundTrip(t, op)

	// default limit is the maximum
	op, err = operation.NewChangeTrust().WithLine(line).Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	trust := op.Body.(*operation.ChangeTrust)
	if operation.MaxTrustLimit != trust.Limit {
		t.Fatalf("limit: %d  expected: %d", trust.Limit, operation.MaxTrustLimit)
	}
	roundTrip(t, op)

	// zero deletes the trust line
	op, err = operation.NewChangeTrust().WithLine(line).WithLimit(0).Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	roundTrip(t, op)
}

func TestChangeTrustValidation(t *testing.T) {

	_, err := operation.NewChangeTrust().Build()
	if fault.ErrTrustAssetRequired != err {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = operation.NewChangeTrust().
		WithLine(operation.NativeAsset()).
		Build()
	if fault.ErrTrustAssetIsNative != err {
		t.Fatalf("unexpected error: %v", err)
	}

	line, err := operation.CreditAsset("USD", makeAccount(t, issuerPublicKey))
	if nil != err {
		t.Fatalf("asset error: %s", err)
	}
	_, err = operation.NewChangeTrust().
		WithLine(line).
		WithLimit(-1).
		Build()
	if fault.ErrTrustLimitOutOfRange != err {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPackAccountMerge(t *testing.T) {

	op, err := operation.NewAccountMerge().
		WithDestination(account.NewMuxedAccount(makeAccount(t, recipientPublicKey))).
		Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	roundTrip(t, op)

	_, err = operation.NewAccountMerge().Build()
	if fault.ErrDestinationRequired != err {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPackInflation(t *testing.T) {

	op, err := operation.NewInflation().Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}

	// the discriminant alone is the whole record
	expected := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x09,
	}
	packed, err := op.Pack(nil)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}
	roundTrip(t, op)
}

func TestPackManageData(t *testing.T) {

	// name length of five exercises the padding path
	op, err := operation.NewManageData().
		WithName("stats").
		WithValue([]byte{0x01, 0x02, 0x03}).
		Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}

	expected := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x0a, // manage data
		0x00, 0x00, 0x00, 0x05, 's', 't', 'a', 't', 's', 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01, // value present
		0x00, 0x00, 0x00, 0x03, 0x01, 0x02, 0x03, 0x00,
	}
	packed, err := op.Pack(nil)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(packed, expected) {
		t.Fatalf("pack record: %x  expected: %x", packed, expected)
	}
	roundTrip(t, op)

	// a delete: no value at all
	op, err = operation.NewManageData().WithName("stats").Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	roundTrip(t, op)
}

// a nil value is a delete; an empty non-nil slice sets an empty value
func TestManageDataNilValueDeletes(t *testing.T) {

	deleted, err := operation.NewManageData().
		WithName("stats").
		WithValue(nil).
		Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	if nil != deleted.Body.(*operation.ManageData).Value {
		t.Fatal("nil value did not build a delete")
	}

	// byte identical to never setting a value
	bare, err := operation.NewManageData().WithName("stats").Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	deletedPacked, err := deleted.Pack(nil)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	barePacked, err := bare.Pack(nil)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if !bytes.Equal(deletedPacked, barePacked) {
		t.Fatalf("delete forms differ: %x  expected: %x", deletedPacked, barePacked)
	}
	roundTrip(t, deleted)

	// set-to-empty is a different record
	empty, err := operation.NewManageData().
		WithName("stats").
		WithValue([]byte{}).
		Build()
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	if nil == empty.Body.(*operation.ManageData).Value {
		t.Fatal("empty value built a delete")
	}
	emptyPacked, err := empty.Pack(nil)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if bytes.Equal(emptyPacked, deletedPacked) {
		t.Fatal("set-to-empty encoded as a delete")
	}
	roundTrip(t, empty)
}

func TestManageDataValidation(t *testing.T) {

	_, err := operation.NewManageData().Build()
	if fault.ErrDataNameRequired != err {
		t.Fatalf("unexpected error: %v", err)
	}

	longName := make([]byte, 65)
	for i := range longName {
		longName[i] = 'x'
	}
	_, err = operation.NewManageData().WithName(string(longName)).Build()
	if fault.ErrDataNameTooLong != err {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = operation.NewManageData().
		WithName("ok").
		WithValue(make([]byte, 65)).
		Build()
	if fault.ErrDataValueTooLong != err {
		t.Fatalf("unexpected error: %v", err)
	}
}
