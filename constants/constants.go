// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// request admission timing, all in unix seconds
const (
	// MinInterval - a pair issuing requests closer together than this is banned
	MinInterval = 5

	// BanPenalty - multiplied by the number of offences to get the ban length
	BanPenalty = 30

	// SecondsPerDay - unit for charging the daily price
	SecondsPerDay = 24 * 60 * 60
)

// limits on the size of caller supplied data
const (
	MaximumDeviceIdLength = 64
	MaximumApiLength      = 256
	MaximumDataHashLength = 64
)

// escrow expiry defaults
const (
	DefaultEscrowExpiry   = 7 * 24 * time.Hour
	DefaultExpiryInterval = 10 * time.Minute
)
