// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	l := ratelimit.New(100, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(l), "within burst")
	}
}

func TestLimitN(t *testing.T) {
	l := ratelimit.New(100, 10)

	assert.Nil(t, ratelimit.LimitN(l, 5, 10), "valid count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 0, 10), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 11, 10), "count over maximum")
}

func TestLimitNExceedsBurst(t *testing.T) {
	l := ratelimit.New(100, 10)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(l, 20, 50), "larger than burst")
}
