// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/xdr"
)

// MemoType - wire discriminant for memo kinds
type MemoType uint32

// enumerate the memo kinds
const (
	MemoNoneTag   MemoType = 0
	MemoTextTag   MemoType = 1
	MemoIDTag     MemoType = 2
	MemoHashTag   MemoType = 3
	MemoReturnTag MemoType = 4
)

// byte sizes for memo fields
const (
	maxMemoTextLength = 28
	memoHashLength    = 32
)

// Memo - the optional annotation attached to a transaction
//
// the zero value is the absent memo
type Memo struct {
	Type MemoType `json:"type"`
	Text string   `json:"text,omitempty"`
	ID   uint64   `json:"id,omitempty"`
	Hash []byte   `json:"hash,omitempty"` // hash or return value, thirty two bytes
}

// NoMemo - the absent memo
func NoMemo() Memo {
	return Memo{}
}

// MemoText - a short utf-8 annotation
func MemoText(text string) (Memo, error) {
	if len(text) > maxMemoTextLength {
		return Memo{}, fault.ErrMemoTextTooLong
	}
	return Memo{Type: MemoTextTag, Text: text}, nil
}

// MemoID - a 64 bit identifier annotation
func MemoID(id uint64) Memo {
	return Memo{Type: MemoIDTag, ID: id}
}

// MemoHash - a digest annotation
func MemoHash(hash []byte) (Memo, error) {
	return hashMemo(MemoHashTag, hash)
}

// MemoReturn - the digest of a transaction being refunded
func MemoReturn(hash []byte) (Memo, error) {
	return hashMemo(MemoReturnTag, hash)
}

func hashMemo(memoType MemoType, hash []byte) (Memo, error) {
	if memoHashLength != len(hash) {
		return Memo{}, fault.ErrMemoHashLength
	}
	h := make([]byte, memoHashLength)
	copy(h, hash)
	return Memo{Type: memoType, Hash: h}, nil
}

// pack - append the memo to a buffer
func (memo Memo) pack(buffer xdr.Packed) (xdr.Packed, error) {
	buffer = xdr.AppendUint32(buffer, uint32(memo.Type))
	switch memo.Type {
	case MemoNoneTag:
		return buffer, nil
	case MemoTextTag:
		if len(memo.Text) > maxMemoTextLength {
			return nil, fault.ErrMemoTextTooLong
		}
		return xdr.AppendString(buffer, memo.Text), nil
	case MemoIDTag:
		return xdr.AppendUint64(buffer, memo.ID), nil
	case MemoHashTag, MemoReturnTag:
		if memoHashLength != len(memo.Hash) {
			return nil, fault.ErrMemoHashLength
		}
		return xdr.AppendFixedOpaque(buffer, memo.Hash), nil
	default:
		return nil, fault.ErrInvalidMemoType
	}
}

// unpackMemo - read a memo from a reader
func unpackMemo(r *xdr.Reader) (Memo, error) {
	tag, err := r.Uint32()
	if nil != err {
		return Memo{}, err
	}

	switch MemoType(tag) {
	case MemoNoneTag:
		return Memo{}, nil
	case MemoTextTag:
		text, err := r.String(maxMemoTextLength)
		if nil != err {
			return Memo{}, err
		}
		return Memo{Type: MemoTextTag, Text: text}, nil
	case MemoIDTag:
		id, err := r.Uint64()
		if nil != err {
			return Memo{}, err
		}
		return Memo{Type: MemoIDTag, ID: id}, nil
	case MemoHashTag, MemoReturnTag:
		hash, err := r.FixedOpaque(memoHashLength)
		if nil != err {
			return Memo{}, err
		}
		return Memo{Type: MemoType(tag), Hash: hash}, nil
	default:
		return Memo{}, fault.ErrInvalidMemoType
	}
}
