// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS
//
// two RPC types are registered:
//
//   AccessControl  device registry, data requests, settlement and queries
//   Node           version, uptime and operation counters
//
// mutating AccessControl methods require a secp256k1 signature of the
// caller over the method name and the JSON of the arguments
package rpc
