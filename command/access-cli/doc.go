// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// access-cli - command line client for accessd
//
// global options select the daemon (--connect) and the signing key
// (--key or the ACCESS_CLI_KEY environment variable).  Signed
// commands fetch the account nonce before each call.
package main
