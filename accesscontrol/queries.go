// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/abuse"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/constants"
	"github.com/bitmark-inc/accessd/registry"
	"github.com/bitmark-inc/accessd/request"
)

// all queries hold the read lock so they only see committed state

// UserDevices - device at a position in an owner's list
func (s *Service) UserDevices(owner account.Address, index uint64) (*registry.Device, error) {
	s.RLock()
	defer s.RUnlock()
	return s.registry.Get(owner, index)
}

// DeviceCount - number of devices of an owner
func (s *Service) DeviceCount(owner account.Address) uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.registry.Count(owner)
}

// BadRequestList - ban record at a position for a pair
func (s *Service) BadRequestList(requester account.Address, owner account.Address, index uint64) (abuse.BanRecord, error) {
	s.RLock()
	defer s.RUnlock()
	return s.abuse.Get(requester, owner, index)
}

// BadRequestListLength - number of ban records of a pair
func (s *Service) BadRequestListLength(requester account.Address, owner account.Address) uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.abuse.Length(requester, owner)
}

// MinInterval - seconds a pair must wait between requests
func (s *Service) MinInterval() uint64 {
	return constants.MinInterval
}

// Request - a request by its transaction id
func (s *Service) Request(txId common.Hash) (*request.DataRequest, error) {
	s.RLock()
	defer s.RUnlock()
	return s.book.Get(txId)
}

// Requests - page of the requests addressed to an owner
func (s *Service) Requests(owner account.Address, start uint64, count int) ([]*request.DataRequest, uint64, error) {
	s.RLock()
	defer s.RUnlock()
	return s.book.List(owner, start, count)
}

// ExpiresAt - time from which a Requested request can be refunded,
// false if expiry is disabled
func (s *Service) ExpiresAt(r *request.DataRequest) (uint64, bool) {
	if 0 == s.escrowExpiry {
		return 0, false
	}
	s.RLock()
	defer s.RUnlock()
	return s.expiryOf(r), true
}

// Balance - spendable value of an address
func (s *Service) Balance(address account.Address) *uint256.Int {
	s.RLock()
	defer s.RUnlock()
	return s.ledger.Balance(address)
}

// EscrowTotal - value held for open requests
func (s *Service) EscrowTotal() *uint256.Int {
	s.RLock()
	defer s.RUnlock()
	return s.ledger.EscrowTotal()
}

// Nonce - the nonce the next call from address must carry
func (s *Service) Nonce(address account.Address) uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.ledger.Nonce(address)
}
