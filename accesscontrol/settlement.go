// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/constants"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/request"
)

// ConfirmSentData - the owner reports the data of a request as sent
//
// Requested -> DataSent, no value moves
func (s *Service) ConfirmSentData(call Call, requester account.Address, txId common.Hash, dataHash []byte) error {
	if 0 == len(dataHash) || len(dataHash) > constants.MaximumDataHashLength {
		return fault.DataHashLength
	}

	_, err := s.update(call, false, func(*uint256.Int) ([]Event, error) {
		r, err := s.book.Get(txId)
		if nil != err {
			return nil, err
		}
		if r.Owner != call.From {
			return nil, fault.NotDeviceOwner
		}
		if r.Requester != requester {
			return nil, fault.RequesterMismatch
		}
		if request.Requested != r.Status {
			return nil, fault.WrongRequestStatus
		}

		now := s.ledger.Now()
		r.Status = request.DataSent
		r.DataHash = dataHash
		r.SentAt = now
		err = s.book.Update(r)
		if nil != err {
			return nil, err
		}
		s.book.ClearExpiry(txId)

		return []Event{{
			Name:      EventDataSent,
			TxId:      &r.TxId,
			Api:       r.Api,
			Requester: &r.Requester,
			Owner:     &r.Owner,
			DataHash:  dataHash,
			Time:      now,
		}}, nil
	})
	if nil != err {
		return err
	}

	s.log.Infof("data sent: tx: %s  hash: %x", txId.Hex(), dataHash)
	return nil
}

// ConfirmReceivedData - the requester confirms receipt
//
// DataSent -> Completed, the escrow is released to the owner; only
// one call can succeed for a request
func (s *Service) ConfirmReceivedData(call Call, owner account.Address, txId common.Hash) error {
	value := ""
	_, err := s.update(call, false, func(*uint256.Int) ([]Event, error) {
		r, err := s.book.Get(txId)
		if nil != err {
			return nil, err
		}
		if r.Requester != call.From {
			return nil, fault.NotRequester
		}
		if r.Owner != owner {
			return nil, fault.OwnerMismatch
		}
		if request.DataSent != r.Status {
			return nil, fault.WrongRequestStatus
		}

		err = s.ledger.Release(r.Owner, r.Value)
		if nil != err {
			return nil, err
		}

		now := s.ledger.Now()
		r.Status = request.Completed
		r.ClosedAt = now
		err = s.book.Update(r)
		if nil != err {
			return nil, err
		}

		value = r.Value.Dec()
		return []Event{{
			Name:      EventDataReceived,
			TxId:      &r.TxId,
			Api:       r.Api,
			Requester: &r.Requester,
			Owner:     &r.Owner,
			Value:     value,
			Time:      now,
		}}, nil
	})
	if nil != err {
		return err
	}

	s.Statistics.Completed.Increment()
	s.log.Infof("data received: tx: %s  paid: %s", txId.Hex(), value)
	return nil
}

// Reclaim - the requester takes back the escrow of an expired request
//
// Requested -> Rejected once the expiry time has passed
func (s *Service) Reclaim(call Call, txId common.Hash) error {
	if 0 == s.escrowExpiry {
		return fault.EscrowExpiryDisabled
	}

	_, err := s.update(call, false, func(*uint256.Int) ([]Event, error) {
		r, err := s.book.Get(txId)
		if nil != err {
			return nil, err
		}
		if r.Requester != call.From {
			return nil, fault.NotRequester
		}
		if request.Requested != r.Status {
			return nil, fault.WrongRequestStatus
		}

		now := s.ledger.Now()
		if now < s.expiryOf(r) {
			return nil, fault.RequestNotExpired
		}

		e, err := s.refund(r, now)
		if nil != err {
			return nil, err
		}
		return []Event{e}, nil
	})
	if nil != err {
		return err
	}

	s.Statistics.Refunded.Increment()
	s.log.Infof("reclaim: tx: %s", txId.Hex())
	return nil
}

// Expire - refund every request whose expiry time has passed
//
// returns the number of requests refunded
func (s *Service) Expire() (int, error) {
	if 0 == s.escrowExpiry {
		return 0, nil
	}

	s.Lock()
	defer s.Unlock()

	now := s.ledger.Now()
	expired := s.book.Expired(now)
	if 0 == len(expired) {
		return 0, nil
	}

	err := s.store.Begin()
	if nil != err {
		return 0, err
	}

	events := make([]Event, 0, len(expired))
	for _, txId := range expired {
		r, err := s.book.Get(txId)
		if nil != err {
			s.log.Warnf("expire: tx: %s  error: %s", txId.Hex(), err)
			s.book.ClearExpiry(txId)
			continue
		}
		if request.Requested != r.Status {
			s.book.ClearExpiry(txId)
			continue
		}

		e, err := s.refund(r, now)
		if nil != err {
			s.store.Abort()
			s.log.Errorf("expire: tx: %s  refund error: %s", txId.Hex(), err)
			return 0, err
		}
		events = append(events, e)
	}

	err = s.store.Commit()
	if nil != err {
		s.store.Abort()
		return 0, err
	}

	for _, e := range events {
		s.publisher.Publish(e)
	}
	s.Statistics.Refunded.Add(uint64(len(events)))
	if 0 != len(events) {
		s.log.Infof("expire: refunded: %d", len(events))
	}
	return len(events), nil
}

// the stored expiry, or the one implied by the current setting for
// requests made while expiry was disabled
func (s *Service) expiryOf(r *request.DataRequest) uint64 {
	if at, found := s.book.ExpiresAt(r.TxId); found {
		return at
	}
	return s.expiresAt(r)
}

func (s *Service) refund(r *request.DataRequest, now uint64) (Event, error) {
	err := s.ledger.Release(r.Requester, r.Value)
	if nil != err {
		return Event{}, err
	}

	r.Status = request.Rejected
	r.ClosedAt = now
	err = s.book.Update(r)
	if nil != err {
		return Event{}, err
	}
	s.book.ClearExpiry(r.TxId)

	return Event{
		Name:      EventRefund,
		TxId:      &r.TxId,
		Api:       r.Api,
		Requester: &r.Requester,
		Owner:     &r.Owner,
		Value:     r.Value.Dec(),
		Time:      now,
	}, nil
}
