// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bitmark-inc/accessd/abuse"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/request"
	"github.com/bitmark-inc/accessd/rpc/ratelimit"
)

// ---

// UserDevicesArguments - one entry of an owner's device list
type UserDevicesArguments struct {
	Owner account.Address `json:"owner"`
	Index uint64          `json:"index"`
}

// DeviceReply - a registered device
type DeviceReply struct {
	Owner      account.Address `json:"owner"`
	DeviceId   hexutil.Bytes   `json:"deviceId"`
	DailyPrice string          `json:"dailyPrice"`
}

// UserDevices - device at index in the owner's list
func (ac *AccessControl) UserDevices(arguments *UserDevicesArguments, reply *DeviceReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	d, err := ac.Backend.UserDevices(arguments.Owner, arguments.Index)
	if nil != err {
		return err
	}
	reply.Owner = d.Owner
	reply.DeviceId = d.DeviceId
	reply.DailyPrice = d.DailyPrice.Dec()
	return nil
}

// ---

// OwnerArguments - an owner address
type OwnerArguments struct {
	Owner account.Address `json:"owner"`
}

// CountReply - length of a list
type CountReply struct {
	Count uint64 `json:"count"`
}

// DeviceCount - number of devices an owner registered
func (ac *AccessControl) DeviceCount(arguments *OwnerArguments, reply *CountReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	reply.Count = ac.Backend.DeviceCount(arguments.Owner)
	return nil
}

// ---

// PairArguments - a (requester, owner) pair
type PairArguments struct {
	Requester account.Address `json:"requester"`
	Owner     account.Address `json:"owner"`
}

// BadRequestListArguments - one ban record of a pair
type BadRequestListArguments struct {
	Requester account.Address `json:"requester"`
	Owner     account.Address `json:"owner"`
	Index     uint64          `json:"index"`
}

// BadRequestList - ban record at index for a pair
func (ac *AccessControl) BadRequestList(arguments *BadRequestListArguments, reply *abuse.BanRecord) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	record, err := ac.Backend.BadRequestList(arguments.Requester, arguments.Owner, arguments.Index)
	if nil != err {
		return err
	}
	*reply = record
	return nil
}

// BadRequestListLength - number of ban records of a pair
func (ac *AccessControl) BadRequestListLength(arguments *PairArguments, reply *CountReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	reply.Count = ac.Backend.BadRequestListLength(arguments.Requester, arguments.Owner)
	return nil
}

// ---

// MinIntervalArguments - empty arguments
type MinIntervalArguments struct{}

// MinIntervalReply - seconds required between two requests of a pair
type MinIntervalReply struct {
	MinInterval uint64 `json:"minInterval"`
}

// MinInterval - the abuse threshold
func (ac *AccessControl) MinInterval(_ *MinIntervalArguments, reply *MinIntervalReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	reply.MinInterval = ac.Backend.MinInterval()
	return nil
}

// ---

// RequestArguments - a transaction id
type RequestArguments struct {
	TxId common.Hash `json:"txId"`
}

// RequestReply - a data request as sent to clients
type RequestReply struct {
	TxId      common.Hash     `json:"txId"`
	Requester account.Address `json:"requester"`
	Owner     account.Address `json:"owner"`
	DeviceId  hexutil.Bytes   `json:"deviceId"`
	FromTime  uint64          `json:"fromTime"`
	ToTime    uint64          `json:"toTime"`
	Api       string          `json:"api"`
	Value     string          `json:"value"`
	Status    request.Status  `json:"status"`
	DataHash  hexutil.Bytes   `json:"dataHash,omitempty"`
	CreatedAt uint64          `json:"createdAt"`
	SentAt    uint64          `json:"sentAt,omitempty"`
	ClosedAt  uint64          `json:"closedAt,omitempty"`
	ExpiresAt uint64          `json:"expiresAt,omitempty"`
}

func toRequestReply(r *request.DataRequest, expiresAt uint64, expires bool) RequestReply {
	reply := RequestReply{
		TxId:      r.TxId,
		Requester: r.Requester,
		Owner:     r.Owner,
		DeviceId:  r.DeviceId,
		FromTime:  r.FromTime,
		ToTime:    r.ToTime,
		Api:       r.Api,
		Value:     r.Value.Dec(),
		Status:    r.Status,
		DataHash:  r.DataHash,
		CreatedAt: r.CreatedAt,
		SentAt:    r.SentAt,
		ClosedAt:  r.ClosedAt,
	}
	if expires && request.Requested == r.Status {
		reply.ExpiresAt = expiresAt
	}
	return reply
}

// Request - a single data request
func (ac *AccessControl) Request(arguments *RequestArguments, reply *RequestReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	return ac.fillRequest(arguments.TxId, reply)
}

// ---

// RequestsArguments - a page of an owner's inbox
type RequestsArguments struct {
	Owner account.Address `json:"owner"`
	Start uint64          `json:"start"`
	Count int             `json:"count"`
}

// RequestsReply - requests and the start of the following page
type RequestsReply struct {
	Requests  []RequestReply `json:"requests"`
	NextStart uint64         `json:"nextStart"`
}

// Requests - requests addressed to an owner, oldest first
func (ac *AccessControl) Requests(arguments *RequestsArguments, reply *RequestsReply) error {

	if err := ratelimit.LimitN(ac.Limiter, arguments.Count, request.MaximumListCount); nil != err {
		return err
	}

	list, next, err := ac.Backend.Requests(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Requests = make([]RequestReply, len(list))
	for i, r := range list {
		expiresAt, ok := ac.Backend.ExpiresAt(r)
		reply.Requests[i] = toRequestReply(r, expiresAt, ok)
	}
	reply.NextStart = next
	return nil
}

// ---

// AddressArguments - an account address
type AddressArguments struct {
	Address account.Address `json:"address"`
}

// BalanceReply - spendable balance of an account
type BalanceReply struct {
	Balance string `json:"balance"`
}

// Balance - spendable value of an account
func (ac *AccessControl) Balance(arguments *AddressArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	reply.Balance = ac.Backend.Balance(arguments.Address).Dec()
	return nil
}

// NonceReply - the nonce the next call must carry
type NonceReply struct {
	Nonce uint64 `json:"nonce"`
}

// Nonce - next call nonce of an account
func (ac *AccessControl) Nonce(arguments *AddressArguments, reply *NonceReply) error {

	if err := ratelimit.Limit(ac.Limiter); nil != err {
		return err
	}

	reply.Nonce = ac.Backend.Nonce(arguments.Address)
	return nil
}
