// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/accessd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidAddress  = fault.InvalidError("invalid address")
	ErrInvalidDeviceId = fault.InvalidError("invalid device id")
	ErrInvalidHash     = fault.InvalidError("invalid hash")
	ErrInvalidIndex    = fault.InvalidError("invalid index")
	ErrInvalidTxId     = fault.InvalidError("invalid transaction id")
	ErrMissingKey      = fault.NotFoundError("private key is required")
	ErrMissingPrice    = fault.NotFoundError("daily price is required")
)
