// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/base32"

	"github.com/lumenlabs/lumend/fault"
)

// version bytes for the checksummed key encoding
// the value is chosen so the first character of the text form is fixed
const (
	accountKeyVersion = 6 << 3  // 'G...'
	muxedKeyVersion   = 12 << 3 // 'M...'
	seedKeyVersion    = 18 << 3 // 'S...'
)

const checksumLength = 2

// unpadded upper-case base32
var keyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// encode a payload under a version byte
//
// layout: version ++ payload ++ CRC16(version ++ payload) little-endian
func keyEncode(version byte, payload []byte) string {
	raw := make([]byte, 0, 1+len(payload)+checksumLength)
	raw = append(raw, version)
	raw = append(raw, payload...)
	crc := checksum(raw)
	raw = append(raw, byte(crc), byte(crc>>8))
	return keyEncoding.EncodeToString(raw)
}

// decode a checksummed key, returning its version byte and payload
func keyDecode(encoded string) (byte, []byte, error) {
	raw, err := keyEncoding.DecodeString(encoded)
	if nil != err {
		return 0, nil, err
	}
	if len(raw) < 1+checksumLength {
		return 0, nil, fault.ErrInvalidKeyLength
	}
	checksumStart := len(raw) - checksumLength
	crc := checksum(raw[:checksumStart])
	if byte(crc) != raw[checksumStart] || byte(crc>>8) != raw[checksumStart+1] {
		return 0, nil, fault.ErrChecksumMismatch
	}
	return raw[0], raw[1:checksumStart], nil
}

// CRC16/XMODEM over the version byte and payload
func checksum(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i += 1 {
			if 0 != crc&0x8000 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
