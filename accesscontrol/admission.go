// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/constants"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/request"
)

// DataRequestArguments - what a requester asks for
type DataRequestArguments struct {
	Owner     account.Address
	DeviceId  []byte
	PublicKey []byte
	FromTime  uint64
	ToTime    uint64
	Api       string
}

// RequestData - admit a request for device data
//
// caller errors (window, key, api size, balance, nonce) write nothing;
// otherwise the call commits and the Result tells which rule applied.
// Only Success holds the attached value in escrow.
func (s *Service) RequestData(call Call, arguments DataRequestArguments) (*Result, error) {
	result := &Result{}

	events, err := s.update(call, true, func(value *uint256.Int) ([]Event, error) {
		return s.admit(call.From, call.Nonce, value, arguments, result)
	})
	if nil != err {
		s.log.Debugf("request data: from: %s  error: %s", call.From.Hex(), err)
		return nil, err
	}
	result.Events = events

	s.Statistics.Requests.Increment()
	switch result.Outcome {
	case Success:
		s.Statistics.Success.Increment()
	case DeviceNotFound:
		s.Statistics.DeviceNotFound.Increment()
	case NotEnoughMoney:
		s.Statistics.NotEnoughMoney.Increment()
	case BadRequest:
		s.Statistics.BadRequest.Increment()
	}

	s.log.Infof("request data: from: %s  owner: %s  device: %x  outcome: %s", call.From.Hex(), arguments.Owner.Hex(), arguments.DeviceId, result.Outcome)
	return result, nil
}

func (s *Service) admit(caller account.Address, nonce uint64, value *uint256.Int, arguments DataRequestArguments, result *Result) ([]Event, error) {

	if arguments.FromTime > arguments.ToTime {
		return nil, fault.InvalidTimeWindow
	}

	derived, err := s.deriver.Derive(arguments.PublicKey)
	if nil != err {
		return nil, err
	}
	if derived != caller {
		return nil, fault.PublicKeyMismatch
	}

	if len(arguments.Api) > constants.MaximumApiLength {
		return nil, fault.ApiTooLong
	}

	if s.ledger.Balance(caller).Lt(value) {
		return nil, fault.InsufficientBalance
	}

	now := s.ledger.Now()
	requester := caller
	owner := arguments.Owner

	outcome := func(o Outcome) Event {
		result.Outcome = o
		return Event{
			Name:        EventDataRequest,
			Api:         arguments.Api,
			Description: o.String(),
			Requester:   &requester,
			Owner:       &owner,
			DeviceId:    arguments.DeviceId,
			Time:        now,
		}
	}

	record, admitted := s.abuse.Admit(caller, owner, now)
	if !admitted {
		result.Ban = &record
		ban := Event{
			Name:      EventBan,
			Requester: &requester,
			Owner:     &owner,
			Ban:       &record,
			Time:      now,
		}
		return []Event{ban, outcome(BadRequest)}, nil
	}

	device, _, found := s.registry.Lookup(owner, arguments.DeviceId)
	if !found {
		return []Event{outcome(DeviceNotFound)}, nil
	}

	fee, overflow := request.Fee(device.DailyPrice, arguments.FromTime, arguments.ToTime)
	if !overflow {
		result.Fee = fee
	}
	if overflow || value.Lt(fee) {
		return []Event{outcome(NotEnoughMoney)}, nil
	}

	txId := request.MakeTxId(caller, nonce)
	r := &request.DataRequest{
		TxId:      txId,
		Requester: caller,
		Owner:     owner,
		DeviceId:  device.DeviceId,
		FromTime:  arguments.FromTime,
		ToTime:    arguments.ToTime,
		Api:       arguments.Api,
		Value:     value.Clone(),
		Status:    request.Requested,
		CreatedAt: now,
	}

	err = s.ledger.Hold(caller, value)
	if nil != err {
		return nil, err
	}
	err = s.book.Create(r)
	if nil != err {
		return nil, err
	}
	if 0 != s.escrowExpiry {
		s.book.SetExpiry(txId, s.expiresAt(r))
	}

	result.TxId = txId
	e := outcome(Success)
	e.TxId = &txId
	e.Value = value.Dec()
	return []Event{e}, nil
}

// expiry time of a request, saturating at the largest time
func (s *Service) expiresAt(r *request.DataRequest) uint64 {
	at := r.ToTime + s.escrowExpiry
	if at < r.ToTime {
		return ^uint64(0)
	}
	return at
}
