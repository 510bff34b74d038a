// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger account identities
//
// An Account wraps an ed25519 public key together with its checksummed
// text form; a PrivateKey is the corresponding signing side, derived
// from a checksummed seed.  A MuxedAccount is an account optionally
// carrying a 64 bit multiplexing id, the form the wire format uses for
// transaction and operation sources.
//
// Text forms are the protocol's base32 key encoding: a version byte,
// the payload, and a CRC16 checksum, so a mistyped key is caught before
// it is ever used.
package account
