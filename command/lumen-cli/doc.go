// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command lumen-cli - inspect, sign and verify transaction envelopes
//
// operates entirely on the text transport form (base64 of the
// canonical wire format); never touches the network
package main
