// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol_test

import (
	"testing"
	"time"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/accesscontrol"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/fixtures"
	"github.com/bitmark-inc/accessd/messagebus"
	"github.com/bitmark-inc/accessd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	startTime      = 1554507924
	initialBalance = 1000000000000
)

type testEnv struct {
	store   *storage.Store
	clock   *fixtures.Clock
	bus     *messagebus.BroadcastQueue
	service *accesscontrol.Service
}

func setup(t *testing.T, expiry time.Duration) *testEnv {
	fixtures.SetupTestLogger()

	s, _, err := storage.Open(fixtures.Database("access"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	env := &testEnv{
		store: s,
		clock: fixtures.NewClock(startTime),
		bus:   messagebus.New(),
	}

	log := logger.New(fixtures.LogCategory)
	env.service = accesscontrol.New(log, s, accesscontrol.Options{
		Clock:        env.clock,
		Publisher:    accesscontrol.NewBusPublisher(log, env.bus),
		EscrowExpiry: expiry,
	})

	err = env.service.Allocate(map[account.Address]*uint256.Int{
		fixtures.Owner.Address:     uint256.NewInt(initialBalance),
		fixtures.Requester.Address: uint256.NewInt(initialBalance),
		fixtures.Other.Address:     uint256.NewInt(initialBalance),
	})
	if nil != err {
		t.Fatalf("allocate error: %s", err)
	}
	return env
}

func (env *testEnv) teardown() {
	env.bus.Close()
	env.store.Close()
	fixtures.TeardownTestLogger()
}

// envelope carrying the caller's current nonce
func (env *testEnv) call(from fixtures.Key, value uint64) accesscontrol.Call {
	return accesscontrol.Call{
		From:  from.Address,
		Nonce: env.service.Nonce(from.Address),
		Value: uint256.NewInt(value),
	}
}

func (env *testEnv) register(t *testing.T, owner fixtures.Key, deviceId []byte, price uint64) uint64 {
	n, err := env.service.RegisterDevice(env.call(owner, 0), deviceId, uint256.NewInt(price))
	if nil != err {
		t.Fatalf("register device error: %s", err)
	}
	return n
}

func requestArguments(owner fixtures.Key, requester fixtures.Key, deviceId []byte, from uint64, to uint64) accesscontrol.DataRequestArguments {
	return accesscontrol.DataRequestArguments{
		Owner:     owner.Address,
		DeviceId:  deviceId,
		PublicKey: requester.PublicKey,
		FromTime:  from,
		ToTime:    to,
		Api:       "api",
	}
}
