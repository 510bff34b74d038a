// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdr

import (
	"encoding/base64"

	"github.com/lumenlabs/lumend/fault"
)

// Packed - canonical wire format records are just a byte slice
type Packed []byte

// all variable length fields are padded to this boundary
const boundary = 4

// AppendUint32 - append a big-endian 32 bit unsigned integer
func AppendUint32(buffer Packed, value uint32) Packed {
	return append(buffer,
		byte(value>>24), byte(value>>16), byte(value>>8), byte(value))
}

// AppendInt32 - append a big-endian 32 bit signed integer
//
// two's complement, so just a cast
func AppendInt32(buffer Packed, value int32) Packed {
	return AppendUint32(buffer, uint32(value))
}

// AppendUint64 - append a big-endian 64 bit unsigned integer
func AppendUint64(buffer Packed, value uint64) Packed {
	buffer = AppendUint32(buffer, uint32(value>>32))
	return AppendUint32(buffer, uint32(value))
}

// AppendInt64 - append a big-endian 64 bit signed integer
func AppendInt64(buffer Packed, value int64) Packed {
	return AppendUint64(buffer, uint64(value))
}

// AppendBool - append a four byte 0/1 discriminant
//
// also used for optional field presence flags
func AppendBool(buffer Packed, value bool) Packed {
	if value {
		return AppendUint32(buffer, 1)
	}
	return AppendUint32(buffer, 0)
}

// AppendFixedOpaque - append fixed length opaque data
//
// no length prefix; zero-padded to the four byte boundary
func AppendFixedOpaque(buffer Packed, data []byte) Packed {
	buffer = append(buffer, data...)
	return appendPadding(buffer, len(data))
}

// AppendOpaque - append variable length opaque data
//
// a four byte unsigned length prefix followed by the data,
// zero-padded to the four byte boundary
func AppendOpaque(buffer Packed, data []byte) Packed {
	buffer = AppendUint32(buffer, uint32(len(data)))
	buffer = append(buffer, data...)
	return appendPadding(buffer, len(data))
}

// AppendString - append a variable length string
func AppendString(buffer Packed, s string) Packed {
	return AppendOpaque(buffer, []byte(s))
}

// pad with zero bytes up to the next boundary
func appendPadding(buffer Packed, dataLength int) Packed {
	for i := dataLength; 0 != i%boundary; i += 1 {
		buffer = append(buffer, 0)
	}
	return buffer
}

// Base64 - the text transport form of a packed record
func (record Packed) Base64() string {
	return base64.StdEncoding.EncodeToString(record)
}

// FromBase64 - convert the text transport form back to a packed record
func FromBase64(s string) (Packed, error) {
	record, err := base64.StdEncoding.DecodeString(s)
	if nil != err {
		return nil, fault.ErrCannotDecodeBase64
	}
	return Packed(record), nil
}
