// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package abuse

import (
	"encoding/binary"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/constants"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/storage"
	"github.com/bitmark-inc/accessd/util"
	"github.com/bitmark-inc/logger"
)

// BanRecord - one detected bad request
type BanRecord struct {
	Time     uint64 `json:"time"`
	BanUntil uint64 `json:"banUntil"`
}

// State - abuse state of a (requester, owner) pair
type State struct {
	LastRequestTime uint64
	BanUntil        uint64
	Count           uint64
}

// Control - request interval detection with escalating bans
type Control struct {
	state storage.Handle
	bans  storage.Handle
}

const stateLength = 3 * 8

// New - control on the pools of a store
func New(pools storage.Pools) *Control {
	return &Control{
		state: pools.AbuseState,
		bans:  pools.BanRecords,
	}
}

// State - current state of a pair, false if the pair never requested
func (c *Control) State(requester account.Address, owner account.Address) (State, bool) {
	packed := c.state.Get(pairKey(requester, owner))
	if nil == packed {
		return State{}, false
	}
	if stateLength != len(packed) {
		logger.Panicf("abuse: corrupt state for: %s -> %s  data: %x", requester.Hex(), owner.Hex(), packed)
	}
	return State{
		LastRequestTime: binary.BigEndian.Uint64(packed[0:8]),
		BanUntil:        binary.BigEndian.Uint64(packed[8:16]),
		Count:           binary.BigEndian.Uint64(packed[16:24]),
	}, true
}

// IsBadRequest - true if a request at now is banned or too soon after
// the last admitted one
//
// a clock that went backwards counts as too soon
func (s State) IsBadRequest(now uint64) bool {
	if now < s.BanUntil {
		return true
	}
	if now < s.LastRequestTime {
		return true
	}
	return now-s.LastRequestTime < constants.MinInterval
}

// Admit - gate a request from requester to owner at time now
//
// an admitted request updates the last request time; a bad request
// appends a ban record of BanPenalty seconds times the new record
// count and leaves the last request time unchanged
// returns the new record and false for a bad request
func (c *Control) Admit(requester account.Address, owner account.Address, now uint64) (BanRecord, bool) {
	state, found := c.State(requester, owner)

	if !found || !state.IsBadRequest(now) {
		state.LastRequestTime = now
		c.putState(requester, owner, state)
		return BanRecord{}, true
	}

	record := BanRecord{
		Time:     now,
		BanUntil: now + constants.BanPenalty*(state.Count+1),
	}

	packed := util.AppendUint64(make([]byte, 0, 16), record.Time)
	packed = util.AppendUint64(packed, record.BanUntil)
	c.bans.Put(recordKey(requester, owner, state.Count), packed)

	state.Count += 1
	state.BanUntil = record.BanUntil
	c.putState(requester, owner, state)

	return record, false
}

// Length - number of ban records of a pair
func (c *Control) Length(requester account.Address, owner account.Address) uint64 {
	state, _ := c.State(requester, owner)
	return state.Count
}

// Get - ban record at a position
func (c *Control) Get(requester account.Address, owner account.Address, index uint64) (BanRecord, error) {
	packed := c.bans.Get(recordKey(requester, owner, index))
	if nil == packed {
		return BanRecord{}, fault.BanRecordNotFound
	}
	if 16 != len(packed) {
		logger.Panicf("abuse: corrupt ban record for: %s -> %s  index: %d  data: %x", requester.Hex(), owner.Hex(), index, packed)
	}
	return BanRecord{
		Time:     binary.BigEndian.Uint64(packed[0:8]),
		BanUntil: binary.BigEndian.Uint64(packed[8:16]),
	}, nil
}

func (c *Control) putState(requester account.Address, owner account.Address, state State) {
	packed := make([]byte, 0, stateLength)
	packed = util.AppendUint64(packed, state.LastRequestTime)
	packed = util.AppendUint64(packed, state.BanUntil)
	packed = util.AppendUint64(packed, state.Count)
	c.state.Put(pairKey(requester, owner), packed)
}

// requester ++ owner
func pairKey(requester account.Address, owner account.Address) []byte {
	key := make([]byte, 0, 2*account.AddressLength)
	key = append(key, requester.Bytes()...)
	return append(key, owner.Bytes()...)
}

// requester ++ owner ++ n
func recordKey(requester account.Address, owner account.Address, n uint64) []byte {
	return util.AppendUint64(pairKey(requester, owner), n)
}
