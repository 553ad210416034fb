// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/accessd/abuse"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/rpc/access"
)

// GetNonce - the nonce the next call of an account must carry
func (client *Client) GetNonce(address account.Address) (uint64, error) {
	var reply access.NonceReply
	err := client.call("Nonce", "AccessControl.Nonce", access.AddressArguments{Address: address}, &reply)
	if nil != err {
		return 0, err
	}
	return reply.Nonce, nil
}

// GetBalance - spendable balance and nonce of an account
func (client *Client) GetBalance(address account.Address) (*access.BalanceReply, error) {
	var reply access.BalanceReply
	err := client.call("Balance", "AccessControl.Balance", access.AddressArguments{Address: address}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// DevicesReply - all devices of an owner
type DevicesReply struct {
	Count   uint64               `json:"count"`
	Devices []access.DeviceReply `json:"devices"`
}

// GetDevices - an owner's device list, or the single entry at index
func (client *Client) GetDevices(owner account.Address, index *uint64) (*DevicesReply, error) {
	var count access.CountReply
	err := client.call("Device Count", "AccessControl.DeviceCount", access.OwnerArguments{Owner: owner}, &count)
	if nil != err {
		return nil, err
	}

	reply := &DevicesReply{
		Count:   count.Count,
		Devices: []access.DeviceReply{},
	}

	start, end := uint64(0), count.Count
	if nil != index {
		start, end = *index, *index+1
	}
	for i := start; i < end; i += 1 {
		var d access.DeviceReply
		err := client.call("Device", "AccessControl.UserDevices", access.UserDevicesArguments{Owner: owner, Index: i}, &d)
		if nil != err {
			return nil, err
		}
		reply.Devices = append(reply.Devices, d)
	}
	return reply, nil
}

// BansReply - ban history of a (requester, owner) pair
type BansReply struct {
	MinInterval uint64            `json:"minInterval"`
	Bans        []abuse.BanRecord `json:"bans"`
}

// GetBans - every ban record of a pair
func (client *Client) GetBans(requester account.Address, owner account.Address) (*BansReply, error) {
	var interval access.MinIntervalReply
	err := client.call("Min Interval", "AccessControl.MinInterval", access.MinIntervalArguments{}, &interval)
	if nil != err {
		return nil, err
	}

	var count access.CountReply
	err = client.call("Ban Count", "AccessControl.BadRequestListLength", access.PairArguments{Requester: requester, Owner: owner}, &count)
	if nil != err {
		return nil, err
	}

	reply := &BansReply{
		MinInterval: interval.MinInterval,
		Bans:        make([]abuse.BanRecord, count.Count),
	}
	for i := uint64(0); i < count.Count; i += 1 {
		arguments := access.BadRequestListArguments{Requester: requester, Owner: owner, Index: i}
		err := client.call("Ban", "AccessControl.BadRequestList", arguments, &reply.Bans[i])
		if nil != err {
			return nil, err
		}
	}
	return reply, nil
}

// GetRequest - a single data request
func (client *Client) GetRequest(txId common.Hash) (*access.RequestReply, error) {
	var reply access.RequestReply
	err := client.call("Status", "AccessControl.Request", access.RequestArguments{TxId: txId}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetRequests - a page of an owner's inbox
func (client *Client) GetRequests(owner account.Address, start uint64, count int) (*access.RequestsReply, error) {
	var reply access.RequestsReply
	arguments := access.RequestsArguments{Owner: owner, Start: start, Count: count}
	err := client.call("Requests", "AccessControl.Requests", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
