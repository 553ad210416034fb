// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accesscontrol - pay per access requests for device data
//
// A requester pays into escrow for a time window of a device's data;
// the owner reports the data sent; the requester confirms receipt and
// the escrow is released to the owner.  Requests between a pair
// closer together than the minimum interval are banned with a penalty
// that grows with every offence.
//
// Two kinds of failure are kept apart:
//
//   caller errors   returned as error, nothing is written
//   outcomes        the call commits and the Result (and its events)
//                   tell which business rule applied
//
// All mutating calls are serialised and each runs in a single storage
// transaction.  Events are published after the transaction commits.
package accesscontrol
