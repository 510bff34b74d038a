// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"github.com/lumenlabs/lumend/fault"
)

// Reader - a cursor over a packed record
//
// every read validates the remaining length first, so a reader never
// indexes past the end of the buffer regardless of input
type Reader struct {
	data   Packed
	offset int
}

// NewReader - start reading a packed record from its first byte
func NewReader(data Packed) *Reader {
	return &Reader{data: data}
}

// Remaining - count of bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Done - check that the whole buffer was consumed
//
// a record followed by extra bytes is not that record
func (r *Reader) Done() error {
	if 0 != r.Remaining() {
		return fault.ErrTrailingBytes
	}
	return nil
}

// Uint32 - read a big-endian 32 bit unsigned integer
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if nil != err {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// Int32 - read a big-endian 32 bit signed integer
func (r *Reader) Int32() (int32, error) {
	value, err := r.Uint32()
	return int32(value), err
}

// Uint64 - read a big-endian 64 bit unsigned integer
func (r *Reader) Uint64() (uint64, error) {
	high, err := r.Uint32()
	if nil != err {
		return 0, err
	}
	low, err := r.Uint32()
	if nil != err {
		return 0, err
	}
	return uint64(high)<<32 | uint64(low), nil
}

// Int64 - read a big-endian 64 bit signed integer
func (r *Reader) Int64() (int64, error) {
	value, err := r.Uint64()
	return int64(value), err
}

// Bool - read a four byte 0/1 discriminant
func (r *Reader) Bool() (bool, error) {
	value, err := r.Uint32()
	if nil != err {
		return false, err
	}
	switch value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidBoolean
	}
}

// Flag - read an optional field presence discriminant
//
// same wire form as Bool but reported as a different fault so the
// offending field class is identifiable
func (r *Reader) Flag() (bool, error) {
	value, err := r.Uint32()
	if nil != err {
		return false, err
	}
	switch value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidPresenceFlag
	}
}

// FixedOpaque - read fixed length opaque data and its zero padding
func (r *Reader) FixedOpaque(size int) ([]byte, error) {
	b, err := r.take(size)
	if nil != err {
		return nil, err
	}
	data := make([]byte, size)
	copy(data, b)
	return data, r.skipPadding(size)
}

// Opaque - read variable length opaque data
//
// the length prefix is validated against maxSize before any data is
// touched, so a hostile length cannot cause a huge allocation
func (r *Reader) Opaque(maxSize uint32) ([]byte, error) {
	length, err := r.Uint32()
	if nil != err {
		return nil, err
	}
	if length > maxSize {
		return nil, fault.ErrLengthOutOfRange
	}
	b, err := r.take(int(length))
	if nil != err {
		return nil, err
	}
	data := make([]byte, length)
	copy(data, b)
	return data, r.skipPadding(int(length))
}

// String - read a variable length string
func (r *Reader) String(maxSize uint32) (string, error) {
	data, err := r.Opaque(maxSize)
	if nil != err {
		return "", err
	}
	return string(data), nil
}

// consume and validate the padding after a field of the given length
func (r *Reader) skipPadding(dataLength int) error {
	for i := dataLength; 0 != i%boundary; i += 1 {
		b, err := r.take(1)
		if nil != err {
			return err
		}
		if 0 != b[0] {
			return fault.ErrNonZeroPadding
		}
	}
	return nil
}

// consume n bytes, error on truncated input
func (r *Reader) take(n int) (Packed, error) {
	if n > r.Remaining() {
		return nil, fault.ErrBufferTooShort
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}
