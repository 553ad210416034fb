// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accessd/abuse"
	"github.com/bitmark-inc/accessd/accesscontrol"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/fixtures"
	"github.com/bitmark-inc/accessd/registry"
	"github.com/bitmark-inc/accessd/request"
	"github.com/bitmark-inc/accessd/rpc/access"
	"github.com/bitmark-inc/accessd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockBackend, *access.AccessControl) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	b := mocks.NewMockBackend(ctl)
	return ctl, b, access.New(logger.New(fixtures.LogCategory), b)
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestRegisterDevice(t *testing.T) {
	ctl, b, ac := setup(t)
	defer teardown(ctl)

	arguments := access.RegisterDeviceArguments{
		Envelope: access.Envelope{
			Caller: fixtures.Owner.Address,
			Nonce:  3,
		},
		DeviceId:   []byte{0x11},
		DailyPrice: "2000000000",
	}
	err := access.Sign(access.MethodRegisterDevice, &arguments, fixtures.Owner.Private)
	assert.Nil(t, err, "wrong Sign")

	call := accesscontrol.Call{
		From:  fixtures.Owner.Address,
		Nonce: 3,
		Value: uint256.NewInt(0),
	}
	b.EXPECT().RegisterDevice(call, []byte{0x11}, uint256.NewInt(2000000000)).Return(uint64(4), nil).Times(1)

	var reply access.RegisterDeviceReply
	err = ac.RegisterDevice(&arguments, &reply)
	assert.Nil(t, err, "wrong RegisterDevice")
	assert.Equal(t, uint64(4), reply.Index, "wrong index")
}

func TestRegisterDeviceBadSignature(t *testing.T) {
	ctl, _, ac := setup(t)
	defer teardown(ctl)

	arguments := access.RegisterDeviceArguments{
		Envelope: access.Envelope{
			Caller: fixtures.Owner.Address,
		},
		DeviceId:   []byte{0x11},
		DailyPrice: "2000",
	}
	var reply access.RegisterDeviceReply

	err := ac.RegisterDevice(&arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "unsigned call accepted")

	// signed by somebody else
	err = access.Sign(access.MethodRegisterDevice, &arguments, fixtures.Other.Private)
	assert.Nil(t, err, "wrong Sign")
	err = ac.RegisterDevice(&arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "foreign signature accepted")

	// tampered after signing
	err = access.Sign(access.MethodRegisterDevice, &arguments, fixtures.Owner.Private)
	assert.Nil(t, err, "wrong Sign")
	arguments.DailyPrice = "1"
	err = ac.RegisterDevice(&arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "tampered arguments accepted")

	// signature for another method
	err = access.Sign(access.MethodReclaim, &arguments, fixtures.Owner.Private)
	assert.Nil(t, err, "wrong Sign")
	err = ac.RegisterDevice(&arguments, &reply)
	assert.Equal(t, fault.InvalidSignature, err, "replayed across methods")
}

func TestRegisterDeviceBadPrice(t *testing.T) {
	ctl, _, ac := setup(t)
	defer teardown(ctl)

	arguments := access.RegisterDeviceArguments{
		Envelope: access.Envelope{
			Caller: fixtures.Owner.Address,
		},
		DeviceId:   []byte{0x11},
		DailyPrice: "-5",
	}
	_ = access.Sign(access.MethodRegisterDevice, &arguments, fixtures.Owner.Private)

	var reply access.RegisterDeviceReply
	err := ac.RegisterDevice(&arguments, &reply)
	assert.Equal(t, fault.InvalidValue, err, "negative price accepted")
}

func TestRequestData(t *testing.T) {
	ctl, b, ac := setup(t)
	defer teardown(ctl)

	arguments := access.RequestDataArguments{
		Envelope: access.Envelope{
			Caller: fixtures.Requester.Address,
			Nonce:  0,
			Value:  "5000000000",
		},
		Owner:     fixtures.Owner.Address,
		DeviceId:  []byte{0x11},
		PublicKey: fixtures.Requester.PublicKey,
		FromTime:  1554507924,
		ToTime:    1554597924,
		Api:       "api",
	}
	_ = access.Sign(access.MethodRequestData, &arguments, fixtures.Requester.Private)

	txId := common.HexToHash("0x01")
	result := &accesscontrol.Result{
		Outcome: accesscontrol.Success,
		TxId:    txId,
		Fee:     uint256.NewInt(4000000000),
		Events: []accesscontrol.Event{
			{Name: accesscontrol.EventDataRequest, TxId: &txId, Api: "api"},
		},
	}
	b.EXPECT().RequestData(gomock.Any(), gomock.Any()).DoAndReturn(
		func(call accesscontrol.Call, a accesscontrol.DataRequestArguments) (*accesscontrol.Result, error) {
			assert.Equal(t, fixtures.Requester.Address, call.From, "wrong caller")
			assert.Equal(t, uint256.NewInt(5000000000), call.Value, "wrong value")
			assert.Equal(t, fixtures.Owner.Address, a.Owner, "wrong owner")
			assert.Equal(t, []byte{0x11}, a.DeviceId, "wrong device")
			assert.Equal(t, uint64(1554597924), a.ToTime, "wrong to time")
			return result, nil
		}).Times(1)

	var reply access.RequestDataReply
	err := ac.RequestData(&arguments, &reply)
	assert.Nil(t, err, "wrong RequestData")
	assert.Equal(t, accesscontrol.Success, reply.Outcome, "wrong outcome")
	assert.Equal(t, "Success", reply.Description, "wrong description")
	assert.Equal(t, &txId, reply.TxId, "wrong tx id")
	assert.Equal(t, "4000000000", reply.Fee, "wrong fee")
	assert.Equal(t, 1, len(reply.Events), "wrong events")
}

func TestRequestDataBadRequest(t *testing.T) {
	ctl, b, ac := setup(t)
	defer teardown(ctl)

	arguments := access.RequestDataArguments{
		Envelope: access.Envelope{
			Caller: fixtures.Requester.Address,
			Nonce:  1,
		},
		Owner:    fixtures.Owner.Address,
		DeviceId: []byte{0x11},
	}
	_ = access.Sign(access.MethodRequestData, &arguments, fixtures.Requester.Private)

	ban := &abuse.BanRecord{Time: 10, BanUntil: 40}
	b.EXPECT().RequestData(gomock.Any(), gomock.Any()).Return(&accesscontrol.Result{
		Outcome: accesscontrol.BadRequest,
		Ban:     ban,
	}, nil).Times(1)

	var reply access.RequestDataReply
	err := ac.RequestData(&arguments, &reply)
	assert.Nil(t, err, "wrong RequestData")
	assert.Equal(t, "Bad request", reply.Description, "wrong description")
	assert.Nil(t, reply.TxId, "tx id for a failed request")
	assert.Equal(t, ban, reply.Ban, "wrong ban")
}

func TestConfirmSentData(t *testing.T) {
	ctl, b, ac := setup(t)
	defer teardown(ctl)

	txId := common.HexToHash("0x1234")
	arguments := access.ConfirmSentDataArguments{
		Envelope: access.Envelope{
			Caller: fixtures.Owner.Address,
			Nonce:  7,
		},
		Requester: fixtures.Requester.Address,
		TxId:      txId,
		DataHash:  make([]byte, 32),
	}
	_ = access.Sign(access.MethodConfirmSentData, &arguments, fixtures.Owner.Private)

	r := &request.DataRequest{
		TxId:      txId,
		Requester: fixtures.Requester.Address,
		Owner:     fixtures.Owner.Address,
		Value:     uint256.NewInt(99),
		Status:    request.DataSent,
		DataHash:  make([]byte, 32),
	}

	gomock.InOrder(
		b.EXPECT().ConfirmSentData(gomock.Any(), fixtures.Requester.Address, txId, []byte(arguments.DataHash)).Return(nil),
		b.EXPECT().Request(txId).Return(r, nil),
		b.EXPECT().ExpiresAt(r).Return(uint64(500), true),
	)

	var reply access.ConfirmReply
	err := ac.ConfirmSentData(&arguments, &reply)
	assert.Nil(t, err, "wrong ConfirmSentData")
	assert.Equal(t, request.DataSent, reply.Request.Status, "wrong status")
	assert.Equal(t, "99", reply.Request.Value, "wrong value")
	assert.Equal(t, uint64(0), reply.Request.ExpiresAt, "expiry shown after data sent")
}

func TestConfirmReceivedDataError(t *testing.T) {
	ctl, b, ac := setup(t)
	defer teardown(ctl)

	arguments := access.ConfirmReceivedDataArguments{
		Envelope: access.Envelope{
			Caller: fixtures.Requester.Address,
		},
		Owner: fixtures.Owner.Address,
		TxId:  common.HexToHash("0x99"),
	}
	_ = access.Sign(access.MethodConfirmReceivedData, &arguments, fixtures.Requester.Private)

	b.EXPECT().ConfirmReceivedData(gomock.Any(), fixtures.Owner.Address, arguments.TxId).Return(fault.WrongRequestStatus).Times(1)

	var reply access.ConfirmReply
	err := ac.ConfirmReceivedData(&arguments, &reply)
	assert.Equal(t, fault.WrongRequestStatus, err, "wrong error")
}

func TestReclaimValueRejected(t *testing.T) {
	ctl, _, ac := setup(t)
	defer teardown(ctl)

	arguments := access.ReclaimArguments{
		Envelope: access.Envelope{
			Caller: fixtures.Requester.Address,
			Value:  "abc",
		},
	}
	_ = access.Sign(access.MethodReclaim, &arguments, fixtures.Requester.Private)

	var reply access.ConfirmReply
	err := ac.Reclaim(&arguments, &reply)
	assert.Equal(t, fault.InvalidValue, err, "bad value accepted")
}

func TestQueries(t *testing.T) {
	ctl, b, ac := setup(t)
	defer teardown(ctl)

	owner := fixtures.Owner.Address
	requester := fixtures.Requester.Address

	b.EXPECT().UserDevices(owner, uint64(1)).Return(&registry.Device{
		Owner:      owner,
		DeviceId:   []byte{0x22},
		DailyPrice: uint256.NewInt(2000),
	}, nil)
	var device access.DeviceReply
	err := ac.UserDevices(&access.UserDevicesArguments{Owner: owner, Index: 1}, &device)
	assert.Nil(t, err, "wrong UserDevices")
	assert.Equal(t, "2000", device.DailyPrice, "wrong price")

	b.EXPECT().DeviceCount(owner).Return(uint64(2))
	var count access.CountReply
	err = ac.DeviceCount(&access.OwnerArguments{Owner: owner}, &count)
	assert.Nil(t, err, "wrong DeviceCount")
	assert.Equal(t, uint64(2), count.Count, "wrong device count")

	b.EXPECT().BadRequestList(requester, owner, uint64(0)).Return(abuse.BanRecord{Time: 5, BanUntil: 35}, nil)
	var record abuse.BanRecord
	err = ac.BadRequestList(&access.BadRequestListArguments{Requester: requester, Owner: owner}, &record)
	assert.Nil(t, err, "wrong BadRequestList")
	assert.Equal(t, uint64(35), record.BanUntil, "wrong ban until")

	b.EXPECT().BadRequestListLength(requester, owner).Return(uint64(1))
	err = ac.BadRequestListLength(&access.PairArguments{Requester: requester, Owner: owner}, &count)
	assert.Nil(t, err, "wrong BadRequestListLength")
	assert.Equal(t, uint64(1), count.Count, "wrong ban count")

	b.EXPECT().MinInterval().Return(uint64(5))
	var interval access.MinIntervalReply
	err = ac.MinInterval(&access.MinIntervalArguments{}, &interval)
	assert.Nil(t, err, "wrong MinInterval")
	assert.Equal(t, uint64(5), interval.MinInterval, "wrong interval")

	b.EXPECT().Balance(requester).Return(uint256.NewInt(123))
	var balance access.BalanceReply
	err = ac.Balance(&access.AddressArguments{Address: requester}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, "123", balance.Balance, "wrong balance")

	b.EXPECT().Nonce(requester).Return(uint64(9))
	var nonce access.NonceReply
	err = ac.Nonce(&access.AddressArguments{Address: requester}, &nonce)
	assert.Nil(t, err, "wrong Nonce")
	assert.Equal(t, uint64(9), nonce.Nonce, "wrong nonce")
}

func TestRequests(t *testing.T) {
	ctl, b, ac := setup(t)
	defer teardown(ctl)

	owner := fixtures.Owner.Address
	r := &request.DataRequest{
		TxId:   common.HexToHash("0x05"),
		Owner:  owner,
		Value:  uint256.NewInt(1),
		Status: request.Requested,
	}

	b.EXPECT().Requests(owner, uint64(0), 10).Return([]*request.DataRequest{r}, uint64(1), nil)
	b.EXPECT().ExpiresAt(r).Return(uint64(777), true)

	var reply access.RequestsReply
	err := ac.Requests(&access.RequestsArguments{Owner: owner, Count: 10}, &reply)
	assert.Nil(t, err, "wrong Requests")
	assert.Equal(t, 1, len(reply.Requests), "wrong request count")
	assert.Equal(t, uint64(777), reply.Requests[0].ExpiresAt, "wrong expiry")
	assert.Equal(t, uint64(1), reply.NextStart, "wrong next start")

	err = ac.Requests(&access.RequestsArguments{Owner: owner, Count: request.MaximumListCount + 1}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversized count accepted")
}
