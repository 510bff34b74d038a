// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xdr - canonical wire format primitives
//
// The ledger protocol's on-the-wire encoding: fixed-width big-endian
// integers, four byte discriminants for booleans, optionals and unions,
// and length-prefixed opaque data zero-padded to a four byte boundary.
//
// Encoding a value that already satisfies its type's invariants never
// fails.  Decoding treats the buffer as untrusted: truncation, non-zero
// padding and out-of-range discriminants are all reported as errors,
// never skipped.  For every valid value v and well-formed buffer b
//
//	Unpack(Pack(v)) == v
//	Pack(Unpack(b)) == b
//
// must hold byte for byte - a single byte of divergence invalidates
// signatures ledger-wide.
package xdr
