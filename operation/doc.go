// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation - the typed operations a transaction carries
//
// Each operation kind is a value type built through its own fluent
// builder; the builder accumulates fields in any order, applies the
// kind's invariants on Build and is consumed by it.  A built operation
// is never mutated by this package again.
//
// The operation set is closed: the wire discriminants form a fixed,
// versioned enumeration and decoding an unknown discriminant is a
// reported error, never a silent default.
package operation
