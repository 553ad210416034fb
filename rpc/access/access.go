// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/accessd/abuse"
	"github.com/bitmark-inc/accessd/accesscontrol"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/registry"
	"github.com/bitmark-inc/accessd/request"
	"github.com/bitmark-inc/accessd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -source=access.go -destination=../mocks/backend.go -package=mocks

const (
	rateLimitAccess = 200
	rateBurstAccess = 100
)

// RPC method names, these are also the signing domain
const (
	MethodRegisterDevice      = "AccessControl.RegisterDevice"
	MethodRequestData         = "AccessControl.RequestData"
	MethodConfirmSentData     = "AccessControl.ConfirmSentData"
	MethodConfirmReceivedData = "AccessControl.ConfirmReceivedData"
	MethodReclaim             = "AccessControl.Reclaim"
)

// Backend - the access control operations used by the RPC layer
type Backend interface {
	RegisterDevice(accesscontrol.Call, []byte, *uint256.Int) (uint64, error)
	RequestData(accesscontrol.Call, accesscontrol.DataRequestArguments) (*accesscontrol.Result, error)
	ConfirmSentData(accesscontrol.Call, account.Address, common.Hash, []byte) error
	ConfirmReceivedData(accesscontrol.Call, account.Address, common.Hash) error
	Reclaim(accesscontrol.Call, common.Hash) error
	UserDevices(account.Address, uint64) (*registry.Device, error)
	DeviceCount(account.Address) uint64
	BadRequestList(account.Address, account.Address, uint64) (abuse.BanRecord, error)
	BadRequestListLength(account.Address, account.Address) uint64
	MinInterval() uint64
	Request(common.Hash) (*request.DataRequest, error)
	Requests(account.Address, uint64, int) ([]*request.DataRequest, uint64, error)
	ExpiresAt(*request.DataRequest) (uint64, bool)
	Balance(account.Address) *uint256.Int
	Nonce(account.Address) uint64
}

// AccessControl - type for RPC calls
type AccessControl struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Backend Backend
}

// New - create the AccessControl RPC type
func New(log *logger.L, backend Backend) *AccessControl {
	return &AccessControl{
		Log:     log,
		Limiter: ratelimit.New(rateLimitAccess, rateBurstAccess),
		Backend: backend,
	}
}

// ---

// RegisterDeviceArguments - arguments for RegisterDevice
type RegisterDeviceArguments struct {
	Envelope
	DeviceId   hexutil.Bytes `json:"deviceId"`
	DailyPrice string        `json:"dailyPrice"`
}

// RegisterDeviceReply - index of the new device in the owner's list
type RegisterDeviceReply struct {
	Index uint64 `json:"index"`
}

// RegisterDevice - append a device to the caller's list
func (ac *AccessControl) RegisterDevice(arguments *RegisterDeviceArguments, reply *RegisterDeviceReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	call, err := verify(MethodRegisterDevice, arguments)
	if nil != err {
		return err
	}

	price, err := uint256.FromDecimal(arguments.DailyPrice)
	if nil != err {
		return fault.InvalidValue
	}

	ac.Log.Infof("RegisterDevice: caller: %s  device: %x", call.From.Hex(), []byte(arguments.DeviceId))

	index, err := ac.Backend.RegisterDevice(call, arguments.DeviceId, price)
	if nil != err {
		return err
	}
	reply.Index = index
	return nil
}

// ---

// RequestDataArguments - arguments for RequestData
type RequestDataArguments struct {
	Envelope
	Owner     account.Address `json:"owner"`
	DeviceId  hexutil.Bytes   `json:"deviceId"`
	PublicKey hexutil.Bytes   `json:"publicKey"`
	FromTime  uint64          `json:"fromTime"`
	ToTime    uint64          `json:"toTime"`
	Api       string          `json:"api"`
}

// RequestDataReply - the business outcome of a request
type RequestDataReply struct {
	Outcome     accesscontrol.Outcome `json:"outcome"`
	TxId        *common.Hash          `json:"txId,omitempty"`
	Fee         string                `json:"fee,omitempty"`
	Ban         *abuse.BanRecord      `json:"ban,omitempty"`
	Events      []accesscontrol.Event `json:"events"`
	Description string                `json:"description"`
}

// RequestData - ask for a window of device data, paying into escrow
func (ac *AccessControl) RequestData(arguments *RequestDataArguments, reply *RequestDataReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	call, err := verify(MethodRequestData, arguments)
	if nil != err {
		return err
	}

	ac.Log.Infof("RequestData: caller: %s  owner: %s  device: %x", call.From.Hex(), arguments.Owner.Hex(), []byte(arguments.DeviceId))

	result, err := ac.Backend.RequestData(call, accesscontrol.DataRequestArguments{
		Owner:     arguments.Owner,
		DeviceId:  arguments.DeviceId,
		PublicKey: arguments.PublicKey,
		FromTime:  arguments.FromTime,
		ToTime:    arguments.ToTime,
		Api:       arguments.Api,
	})
	if nil != err {
		return err
	}

	reply.Outcome = result.Outcome
	reply.Description = result.Outcome.String()
	if accesscontrol.Success == result.Outcome {
		txId := result.TxId
		reply.TxId = &txId
	}
	if nil != result.Fee {
		reply.Fee = result.Fee.Dec()
	}
	reply.Ban = result.Ban
	reply.Events = result.Events
	return nil
}

// ---

// ConfirmSentDataArguments - owner's proof of delivery
type ConfirmSentDataArguments struct {
	Envelope
	Requester account.Address `json:"requester"`
	TxId      common.Hash     `json:"txId"`
	DataHash  hexutil.Bytes   `json:"dataHash"`
}

// ConfirmReply - the request after a settlement step
type ConfirmReply struct {
	Request RequestReply `json:"request"`
}

// ConfirmSentData - owner records the hash of the delivered data
func (ac *AccessControl) ConfirmSentData(arguments *ConfirmSentDataArguments, reply *ConfirmReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	call, err := verify(MethodConfirmSentData, arguments)
	if nil != err {
		return err
	}

	ac.Log.Infof("ConfirmSentData: caller: %s  txId: %s", call.From.Hex(), arguments.TxId.Hex())

	err = ac.Backend.ConfirmSentData(call, arguments.Requester, arguments.TxId, arguments.DataHash)
	if nil != err {
		return err
	}
	return ac.fillRequest(arguments.TxId, &reply.Request)
}

// ---

// ConfirmReceivedDataArguments - requester's confirmation of receipt
type ConfirmReceivedDataArguments struct {
	Envelope
	Owner account.Address `json:"owner"`
	TxId  common.Hash     `json:"txId"`
}

// ConfirmReceivedData - requester releases the escrow to the owner
func (ac *AccessControl) ConfirmReceivedData(arguments *ConfirmReceivedDataArguments, reply *ConfirmReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	call, err := verify(MethodConfirmReceivedData, arguments)
	if nil != err {
		return err
	}

	ac.Log.Infof("ConfirmReceivedData: caller: %s  txId: %s", call.From.Hex(), arguments.TxId.Hex())

	err = ac.Backend.ConfirmReceivedData(call, arguments.Owner, arguments.TxId)
	if nil != err {
		return err
	}
	return ac.fillRequest(arguments.TxId, &reply.Request)
}

// ---

// ReclaimArguments - refund of an expired request
type ReclaimArguments struct {
	Envelope
	TxId common.Hash `json:"txId"`
}

// Reclaim - requester takes back the escrow of an unserviced request
func (ac *AccessControl) Reclaim(arguments *ReclaimArguments, reply *ConfirmReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	call, err := verify(MethodReclaim, arguments)
	if nil != err {
		return err
	}

	ac.Log.Infof("Reclaim: caller: %s  txId: %s", call.From.Hex(), arguments.TxId.Hex())

	err = ac.Backend.Reclaim(call, arguments.TxId)
	if nil != err {
		return err
	}
	return ac.fillRequest(arguments.TxId, &reply.Request)
}

func (ac *AccessControl) fillRequest(txId common.Hash, reply *RequestReply) error {
	r, err := ac.Backend.Request(txId)
	if nil != err {
		return err
	}
	expiresAt, ok := ac.Backend.ExpiresAt(r)
	*reply = toRequestReply(r, expiresAt, ok)
	return nil
}
