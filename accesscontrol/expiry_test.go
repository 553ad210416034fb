// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol_test

import (
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accessd/accesscontrol"
	"github.com/bitmark-inc/accessd/background"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/fixtures"
	"github.com/bitmark-inc/accessd/request"
	"github.com/bitmark-inc/logger"
)

const toTime = 1554597924

func TestReclaim(t *testing.T) {
	env := setup(t, time.Hour)
	defer env.teardown()

	txId := admitted(t, env)

	r, _ := env.service.Request(txId)
	at, enabled := env.service.ExpiresAt(r)
	assert.True(t, enabled, "expiry enabled")
	assert.Equal(t, uint64(toTime+3600), at, "expiry time")

	env.clock.Set(toTime + 3599)
	err := env.service.Reclaim(env.call(fixtures.Requester, 0), txId)
	assert.Equal(t, fault.RequestNotExpired, err, "too early")

	env.clock.Set(toTime + 3600)
	err = env.service.Reclaim(env.call(fixtures.Owner, 0), txId)
	assert.Equal(t, fault.NotRequester, err, "owner reclaims")

	err = env.service.Reclaim(env.call(fixtures.Requester, 0), txId)
	assert.Nil(t, err, "reclaim")

	r, _ = env.service.Request(txId)
	assert.Equal(t, request.Rejected, r.Status, "status")
	assert.Equal(t, uint256.NewInt(initialBalance), env.service.Balance(fixtures.Requester.Address), "refunded")
	assert.True(t, env.service.EscrowTotal().IsZero(), "escrow")

	err = env.service.Reclaim(env.call(fixtures.Requester, 0), txId)
	assert.Equal(t, fault.WrongRequestStatus, err, "reclaim twice")
}

func TestReclaimDisabled(t *testing.T) {
	env := setup(t, 0)
	defer env.teardown()

	txId := admitted(t, env)
	env.clock.Set(toTime + 365*24*3600)

	err := env.service.Reclaim(env.call(fixtures.Requester, 0), txId)
	assert.Equal(t, fault.EscrowExpiryDisabled, err, "disabled")

	n, err := env.service.Expire()
	assert.Nil(t, err, "expire")
	assert.Equal(t, 0, n, "nothing expires")
}

func TestExpireSkipsDataSent(t *testing.T) {
	env := setup(t, time.Hour)
	defer env.teardown()

	sent := admitted(t, env)
	assert.Nil(t, env.service.ConfirmSentData(env.call(fixtures.Owner, 0), fixtures.Requester.Address, sent, []byte{1}), "sent")

	// a second request from another requester stays Requested
	result, err := env.service.RequestData(env.call(fixtures.Other, 4000000000), requestArguments(fixtures.Owner, fixtures.Other, []byte{0x11}, 1554500924, 1554597924))
	assert.Nil(t, err, "second request")
	open := result.TxId

	env.clock.Set(toTime + 3600)
	n, err := env.service.Expire()
	assert.Nil(t, err, "expire")
	assert.Equal(t, 1, n, "refunded")

	r, _ := env.service.Request(open)
	assert.Equal(t, request.Rejected, r.Status, "open request")
	r, _ = env.service.Request(sent)
	assert.Equal(t, request.DataSent, r.Status, "sent request")
	assert.Equal(t, uint256.NewInt(5000000000), env.service.EscrowTotal(), "escrow of sent request")
	assert.Equal(t, uint256.NewInt(initialBalance), env.service.Balance(fixtures.Other.Address), "other refunded")

	n, err = env.service.Expire()
	assert.Nil(t, err, "expire again")
	assert.Equal(t, 0, n, "nothing left")
	assert.Equal(t, uint64(1), env.service.Statistics.Refunded.Uint64(), "refund count")
}

func TestExpiryProcess(t *testing.T) {
	env := setup(t, time.Hour)
	defer env.teardown()

	txId := admitted(t, env)
	env.clock.Set(toTime + 3600)

	processes := background.Processes{
		accesscontrol.NewExpiry(logger.New(fixtures.LogCategory), env.service, 5*time.Millisecond),
	}
	b := background.Start(processes, nil)

	status := request.Requested
	for i := 0; i < 100 && request.Requested == status; i += 1 {
		time.Sleep(5 * time.Millisecond)
		r, _ := env.service.Request(txId)
		status = r.Status
	}
	b.Stop()

	assert.Equal(t, request.Rejected, status, "not expired by background")
}
