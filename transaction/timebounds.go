// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/lumenlabs/lumend/xdr"
)

// TimeBounds - the validity window of a transaction
//
// epoch seconds; a zero MaxTime means no upper bound
type TimeBounds struct {
	MinTime uint64 `json:"minTime"`
	MaxTime uint64 `json:"maxTime"`
}

// pack - append the time bounds to a buffer
func (tb *TimeBounds) pack(buffer xdr.Packed) xdr.Packed {
	buffer = xdr.AppendUint64(buffer, tb.MinTime)
	return xdr.AppendUint64(buffer, tb.MaxTime)
}

// unpackTimeBounds - read time bounds from a reader
func unpackTimeBounds(r *xdr.Reader) (*TimeBounds, error) {
	minTime, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	maxTime, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	return &TimeBounds{MinTime: minTime, MaxTime: maxTime}, nil
}
