// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// A single LevelDB database split into pools.  Each pool is defined
// by a one byte prefix obtained from the prefix tag in the struct
// defining the available pools.
//
// All writes go through one batch per Store: Begin, any number of
// Put/Delete, then Commit or Abort.  Reads inside the transaction see
// the pending writes (held in a cache in front of the batch).
//
// Notes:
// 1. ++        = concatenation of byte data
// 2. owner, requester, address = 20 byte account address
// 3. txId      = 32 byte Keccak-256 digest
// 4. n, count  = big endian uint64 (8 bytes)
// 5. time      = unix seconds as big endian uint64
// 6. value     = 32 byte big endian unsigned integer
//
// Devices:
//
//   D ++ owner ++ n            - device list of an owner
//                                data: deviceId(varint length ++ bytes) ++ daily price
//   N ++ owner                 - number of devices registered by owner
//                                data: count
//   I ++ owner ++ SHA3-256(deviceId)
//                              - index of the first device with this id
//                                data: n
//
// Requests:
//
//   R ++ txId                  - data request record
//                                data: packed request
//   L ++ owner ++ n            - requests addressed to an owner, in arrival order
//                                data: txId
//   M ++ owner                 - number of requests addressed to an owner
//                                data: count
//   X ++ txId                  - requests holding escrow that may expire
//                                data: expiry time
//
// Abuse control:
//
//   A ++ requester ++ owner    - abuse state of the pair
//                                data: last request time ++ ban until ++ count
//   B ++ requester ++ owner ++ n
//                              - ban records of the pair
//                                data: time ++ ban until
//
// Value:
//
//   W ++ address               - spendable balance
//                                data: value
//   E                          - total value held in escrow
//                                data: value
//   O ++ address               - number of committed calls from address
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
package storage
