// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr_test

import (
	"bytes"
	"testing"

	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/xdr"
)

// test fixed width integer encoding
//
// ensures the big-endian byte layout never changes
func TestPackIntegers(t *testing.T) {

	buffer := xdr.AppendUint32(nil, 0x01020304)
	buffer = xdr.AppendInt32(buffer, -1)
	buffer = xdr.AppendUint64(buffer, 0x0102030405060708)
	buffer = xdr.AppendInt64(buffer, -2)

	expected := []byte{
		0x01, 0x02, 0x03, 0x04,
		0xff, 0xff, 0xff, 0xff,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
	}
	if !bytes.Equal(buffer, expected) {
		t.Fatalf("packed: %x  expected: %x", buffer, expected)
	}

	r := xdr.NewReader(buffer)
	u32, err := r.Uint32()
	if nil != err {
		t.Fatalf("uint32 error: %s", err)
	}
	if 0x01020304 != u32 {
		t.Errorf("uint32: %x  expected: %x", u32, 0x01020304)
	}
	i32, err := r.Int32()
	if nil != err {
		t.Fatalf("int32 error: %s", err)
	}
	if -1 != i32 {
		t.Errorf("int32: %d  expected: -1", i32)
	}
	u64, err := r.Uint64()
	if nil != err {
		t.Fatalf("uint64 error: %s", err)
	}
	if 0x0102030405060708 != u64 {
		t.Errorf("uint64: %x", u64)
	}
	i64, err := r.Int64()
	if nil != err {
		t.Fatalf("int64 error: %s", err)
	}
	if -2 != i64 {
		t.Errorf("int64: %d  expected: -2", i64)
	}
	if err := r.Done(); nil != err {
		t.Errorf("done error: %s", err)
	}
}

// test variable length opaque encoding
//
// five data bytes must be followed by three zero padding bytes
func TestPackOpaque(t *testing.T) {

	buffer := xdr.AppendOpaque(nil, []byte{0xde, 0xad, 0xbe, 0xef, 0x99})

	expected := []byte{
		0x00, 0x00, 0x00, 0x05,
		0xde, 0xad, 0xbe, 0xef, 0x99, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(buffer, expected) {
		t.Fatalf("packed: %x  expected: %x", buffer, expected)
	}

	r := xdr.NewReader(buffer)
	data, err := r.Opaque(100)
	if nil != err {
		t.Fatalf("opaque error: %s", err)
	}
	if !bytes.Equal(data, []byte{0xde, 0xad, 0xbe, 0xef, 0x99}) {
		t.Errorf("opaque: %x", data)
	}
	if err := r.Done(); nil != err {
		t.Errorf("done error: %s", err)
	}
}

// a data length of exactly the boundary must carry no padding
func TestPackOpaqueAligned(t *testing.T) {

	buffer := xdr.AppendOpaque(nil, []byte{1, 2, 3, 4})
	if 8 != len(buffer) {
		t.Fatalf("packed length: %d  expected: 8", len(buffer))
	}
}

// non-zero padding must be a decode error, not silently ignored
func TestUnpackNonZeroPadding(t *testing.T) {

	buffer := []byte{
		0x00, 0x00, 0x00, 0x01,
		0xaa, 0x00, 0x00, 0x01, // last padding byte corrupted
	}
	r := xdr.NewReader(buffer)
	_, err := r.Opaque(100)
	if fault.ErrNonZeroPadding != err {
		t.Fatalf("unexpected error: %v  expected: %v", err, fault.ErrNonZeroPadding)
	}
}

// a length prefix beyond the caller's limit must be rejected before
// any allocation happens
func TestUnpackOverlongLength(t *testing.T) {

	buffer := xdr.AppendUint32(nil, 0xffffffff)
	r := xdr.NewReader(buffer)
	_, err := r.Opaque(64)
	if fault.ErrLengthOutOfRange != err {
		t.Fatalf("unexpected error: %v", err)
	}
}

// every read must fail cleanly on a truncated buffer
func TestUnpackTruncated(t *testing.T) {

	short := []byte{0x00, 0x00}

	r := xdr.NewReader(short)
	if _, err := r.Uint32(); fault.ErrBufferTooShort != err {
		t.Errorf("uint32 error: %v", err)
	}
	r = xdr.NewReader(short)
	if _, err := r.Uint64(); fault.ErrBufferTooShort != err {
		t.Errorf("uint64 error: %v", err)
	}
	r = xdr.NewReader(short)
	if _, err := r.FixedOpaque(4); fault.ErrBufferTooShort != err {
		t.Errorf("fixed opaque error: %v", err)
	}
	r = xdr.NewReader(short)
	if _, err := r.Opaque(100); fault.ErrBufferTooShort != err {
		t.Errorf("opaque error: %v", err)
	}
}

// booleans and presence flags are four byte 0/1 only
func TestUnpackBadDiscriminants(t *testing.T) {

	two := xdr.AppendUint32(nil, 2)

	r := xdr.NewReader(two)
	if _, err := r.Bool(); fault.ErrInvalidBoolean != err {
		t.Errorf("bool error: %v", err)
	}
	r = xdr.NewReader(two)
	if _, err := r.Flag(); fault.ErrInvalidPresenceFlag != err {
		t.Errorf("flag error: %v", err)
	}

	for _, value := range []uint32{0, 1} {
		r := xdr.NewReader(xdr.AppendUint32(nil, value))
		b, err := r.Bool()
		if nil != err {
			t.Fatalf("bool %d error: %s", value, err)
		}
		if (1 == value) != b {
			t.Errorf("bool %d: %v", value, b)
		}
	}
}

// a reader must notice bytes left over after a record
func TestReaderTrailingBytes(t *testing.T) {

	buffer := xdr.AppendUint32(nil, 7)
	buffer = append(buffer, 0x00)

	r := xdr.NewReader(buffer)
	_, err := r.Uint32()
	if nil != err {
		t.Fatalf("uint32 error: %s", err)
	}
	if fault.ErrTrailingBytes != r.Done() {
		t.Fatalf("done error: %v", r.Done())
	}
}

// text transport must be an exact inverse
func TestBase64RoundTrip(t *testing.T) {

	record := xdr.Packed{0x00, 0x01, 0x02, 0xfe, 0xff}
	back, err := xdr.FromBase64(record.Base64())
	if nil != err {
		t.Fatalf("from base64 error: %s", err)
	}
	if !bytes.Equal(record, back) {
		t.Fatalf("round trip: %x  expected: %x", back, record)
	}

	_, err = xdr.FromBase64("*not base64*")
	if fault.ErrCannotDecodeBase64 != err {
		t.Fatalf("unexpected error: %v", err)
	}
}
