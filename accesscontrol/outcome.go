// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/abuse"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/fault"
)

// Outcome - the business rule path a data request took
type Outcome int

// possible outcomes
const (
	Success Outcome = iota
	DeviceNotFound
	NotEnoughMoney
	BadRequest
)

// String - the description carried in outcome events
func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case DeviceNotFound:
		return "Device doesn't exist"
	case NotEnoughMoney:
		return "Not enough money"
	case BadRequest:
		return "Bad request"
	default:
		return "Unknown"
	}
}

// MarshalText - outcome as its description
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText - outcome from its description
func (o *Outcome) UnmarshalText(text []byte) error {
	for v := Success; v <= BadRequest; v += 1 {
		if v.String() == string(text) {
			*o = v
			return nil
		}
	}
	return fault.InvalidOutcome
}

// event names
const (
	EventDeviceRegistered = "DeviceRegistered"
	EventBan              = "Ban"
	EventDataRequest      = "DataRequest"
	EventDataSent         = "DataSent"
	EventDataReceived     = "DataReceived"
	EventRefund           = "Refund"
)

// Event - audit record of a committed change
type Event struct {
	Name        string           `json:"name"`
	TxId        *common.Hash     `json:"txId,omitempty"`
	Api         string           `json:"api,omitempty"`
	Description string           `json:"description,omitempty"`
	Requester   *account.Address `json:"requester,omitempty"`
	Owner       *account.Address `json:"owner,omitempty"`
	DeviceId    hexutil.Bytes    `json:"deviceId,omitempty"`
	Index       *uint64          `json:"index,omitempty"`
	Value       string           `json:"value,omitempty"`
	DataHash    hexutil.Bytes    `json:"dataHash,omitempty"`
	Ban         *abuse.BanRecord `json:"ban,omitempty"`
	Time        uint64           `json:"time"`
}

// Result - the output of a data request
//
// TxId is set only on Success, Fee when the device was found and
// Ban only for a BadRequest
type Result struct {
	Outcome Outcome
	TxId    common.Hash
	Fee     *uint256.Int
	Ban     *abuse.BanRecord
	Events  []Event
}

// Call - the envelope of every mutating operation
//
// Nonce must equal the caller's current nonce; Value is the amount
// attached to the call (nil for none)
type Call struct {
	From  account.Address
	Nonce uint64
	Value *uint256.Int
}
