// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"encoding/hex"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accessd/accesscontrol"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/command/access-cli/rpccalls"
	"github.com/bitmark-inc/accessd/counter"
	"github.com/bitmark-inc/accessd/fixtures"
	"github.com/bitmark-inc/accessd/request"
	"github.com/bitmark-inc/accessd/rpc/server"
	"github.com/bitmark-inc/accessd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	ownerKey     = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	requesterKey = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"
)

func setup(t *testing.T, trace *bytes.Buffer) (*rpccalls.Client, func()) {
	fixtures.SetupTestLogger()

	s, _, err := storage.Open(fixtures.Database("rpccalls"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	service := accesscontrol.New(log, s, accesscontrol.Options{Clock: fixtures.NewClock(1554507924)})
	err = service.Allocate(map[account.Address]*uint256.Int{
		fixtures.Requester.Address: uint256.NewInt(10000000000),
	})
	if nil != err {
		t.Fatalf("allocate error: %s", err)
	}

	c := counter.Counter(0)
	r := server.Create(log, "2.0", &c, service, nil)

	serverConn, clientConn := net.Pipe()
	go r.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := rpccalls.New(clientConn, nil != trace, trace)
	return client, func() {
		client.Close()
		s.Close()
		fixtures.TeardownTestLogger()
	}
}

func TestNewSigner(t *testing.T) {
	s, err := rpccalls.NewSigner("0x" + ownerKey)
	assert.Nil(t, err, "wrong NewSigner")
	assert.Equal(t, fixtures.Owner.Address, s.Address, "wrong address")
	assert.Equal(t, fixtures.Owner.PublicKey, s.PublicKey, "wrong public key")

	_, err = rpccalls.NewSigner("zz")
	assert.NotNil(t, err, "accepted invalid key")
}

func TestSettlement(t *testing.T) {
	client, teardown := setup(t, nil)
	defer teardown()

	owner, _ := rpccalls.NewSigner(ownerKey)
	requester, _ := rpccalls.NewSigner(requesterKey)

	registered, err := client.RegisterDevice(owner, []byte{0x42}, "2000000000")
	assert.Nil(t, err, "wrong RegisterDevice")
	assert.Equal(t, uint64(0), registered.Index, "wrong index")

	devices, err := client.GetDevices(owner.Address, nil)
	assert.Nil(t, err, "wrong GetDevices")
	assert.Equal(t, uint64(1), devices.Count, "wrong device count")
	assert.Equal(t, "42", hex.EncodeToString(devices.Devices[0].DeviceId), "wrong device id")

	reply, err := client.RequestData(requester, &rpccalls.RequestData{
		Owner:    owner.Address,
		DeviceId: []byte{0x42},
		FromTime: 1554507924,
		ToTime:   1554597924,
		Api:      "api",
		Value:    "5000000000",
	})
	assert.Nil(t, err, "wrong RequestData")
	assert.Equal(t, accesscontrol.Success, reply.Outcome, "wrong outcome")
	if nil == reply.TxId {
		t.Fatal("missing tx id")
	}
	txId := *reply.TxId

	requests, err := client.GetRequests(owner.Address, 0, 10)
	assert.Nil(t, err, "wrong GetRequests")
	assert.Equal(t, 1, len(requests.Requests), "wrong request count")
	assert.Equal(t, txId, requests.Requests[0].TxId, "wrong listed request")

	sent, err := client.ConfirmSentData(owner, requester.Address, txId, make([]byte, 32))
	assert.Nil(t, err, "wrong ConfirmSentData")
	assert.Equal(t, request.DataSent, sent.Request.Status, "wrong status after sent")

	received, err := client.ConfirmReceivedData(requester, owner.Address, txId)
	assert.Nil(t, err, "wrong ConfirmReceivedData")
	assert.Equal(t, request.Completed, received.Request.Status, "wrong status after received")

	status, err := client.GetRequest(txId)
	assert.Nil(t, err, "wrong GetRequest")
	assert.Equal(t, request.Completed, status.Status, "wrong final status")

	balance, err := client.GetBalance(owner.Address)
	assert.Nil(t, err, "wrong GetBalance")
	assert.Equal(t, "5000000000", balance.Balance, "owner not paid")

	nonce, err := client.GetNonce(requester.Address)
	assert.Nil(t, err, "wrong GetNonce")
	assert.Equal(t, uint64(2), nonce, "wrong requester nonce")

	info, err := client.GetInfo()
	assert.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, "2.0", info.Version, "wrong version")
	assert.Equal(t, uint64(1), info.Counters.Completed, "wrong completed count")
}

func TestBans(t *testing.T) {
	client, teardown := setup(t, nil)
	defer teardown()

	requester, _ := rpccalls.NewSigner(requesterKey)
	data := &rpccalls.RequestData{
		Owner:    fixtures.Owner.Address,
		DeviceId: []byte{0x42},
		FromTime: 1554507924,
		ToTime:   1554597924,
		Value:    "0",
	}

	_, err := client.RequestData(requester, data)
	assert.Nil(t, err, "wrong first RequestData")
	second, err := client.RequestData(requester, data)
	assert.Nil(t, err, "wrong second RequestData")
	assert.Equal(t, accesscontrol.BadRequest, second.Outcome, "burst not rejected")

	bans, err := client.GetBans(requester.Address, fixtures.Owner.Address)
	assert.Nil(t, err, "wrong GetBans")
	assert.Equal(t, uint64(5), bans.MinInterval, "wrong min interval")
	assert.Equal(t, 1, len(bans.Bans), "wrong ban count")
}

func TestVerboseTrace(t *testing.T) {
	trace := &bytes.Buffer{}
	client, teardown := setup(t, trace)
	defer teardown()

	_, err := client.GetInfo()
	assert.Nil(t, err, "wrong GetInfo")
	assert.Contains(t, trace.String(), "Info Request:", "missing request trace")
	assert.Contains(t, trace.String(), "Info Reply:", "missing reply trace")
}
