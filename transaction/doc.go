// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - assembling, encoding and signing transactions
//
// A Transaction collects a source account, sequence number, fee, time
// bounds, memo and an ordered list of operations; the Builder enforces
// the protocol invariants (one to one hundred operations, fee covering
// every operation at the configured base rate) before a Transaction
// value exists.
//
// An Envelope wraps one transaction with its accumulated signatures.
// The signature payload is the network id followed by the tagged
// canonical encoding of the transaction, so a signature can never be
// replayed on another network or under another envelope type.  Signing
// is additive; this package proves or disproves individual signatures
// and has no opinion on threshold policy.
package transaction
