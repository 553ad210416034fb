// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol

import (
	"sync"
	"time"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/abuse"
	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/counter"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/ledger"
	"github.com/bitmark-inc/accessd/registry"
	"github.com/bitmark-inc/accessd/request"
	"github.com/bitmark-inc/accessd/storage"
	"github.com/bitmark-inc/logger"
)

// Transactor - atomic commit of all pool writes made by one call
type Transactor interface {
	Begin() error
	Commit() error
	Abort()
}

// Options - collaborators and policy of a service
//
// nil Deriver uses account.KeccakDeriver, nil Clock the system clock
// and nil Publisher discards events; zero EscrowExpiry disables refunds
type Options struct {
	Deriver      account.Deriver
	Clock        ledger.Clock
	Publisher    Publisher
	EscrowExpiry time.Duration
}

// Statistics - totals since start
type Statistics struct {
	Registrations  counter.Counter
	Requests       counter.Counter
	Success        counter.Counter
	DeviceNotFound counter.Counter
	NotEnoughMoney counter.Counter
	BadRequest     counter.Counter
	Completed      counter.Counter
	Refunded       counter.Counter
}

// Service - the access control state machine over one store
type Service struct {
	sync.RWMutex

	log          *logger.L
	store        Transactor
	ledger       ledger.Ledger
	registry     *registry.Registry
	abuse        *abuse.Control
	book         *request.Book
	deriver      account.Deriver
	publisher    Publisher
	escrowExpiry uint64

	Statistics Statistics
}

// New - service on an open store
func New(log *logger.L, store *storage.Store, options Options) *Service {
	return NewWithLedger(log, store, store.Pool, ledger.New(store.Pool, options.Clock), options)
}

// NewWithLedger - service using an externally supplied ledger
func NewWithLedger(log *logger.L, store Transactor, pools storage.Pools, l ledger.Ledger, options Options) *Service {
	if nil == log {
		logger.Panic("accesscontrol: nil logger")
	}

	deriver := options.Deriver
	if nil == deriver {
		deriver = account.KeccakDeriver
	}
	publisher := options.Publisher
	if nil == publisher {
		publisher = discard{}
	}

	return &Service{
		log:          log,
		store:        store,
		ledger:       l,
		registry:     registry.New(pools),
		abuse:        abuse.New(pools),
		book:         request.New(pools),
		deriver:      deriver,
		publisher:    publisher,
		escrowExpiry: uint64(options.EscrowExpiry / time.Second),
	}
}

// Allocate - credit initial balances without a call envelope
func (s *Service) Allocate(allocations map[account.Address]*uint256.Int) error {
	s.Lock()
	defer s.Unlock()

	err := s.store.Begin()
	if nil != err {
		return err
	}
	for address, value := range allocations {
		err := s.ledger.Credit(address, value)
		if nil != err {
			s.store.Abort()
			return err
		}
		s.log.Infof("allocate: %s  value: %s", address.Hex(), value.Dec())
	}
	return s.store.Commit()
}

// EscrowExpiry - seconds after the end of the window before an
// unserviced request can be refunded, zero if disabled
func (s *Service) EscrowExpiry() uint64 {
	return s.escrowExpiry
}

// update - run fn as one atomic call
//
// the nonce is checked and incremented, value is rejected for non
// payable operations and any error from fn discards all its writes
func (s *Service) update(call Call, payable bool, fn func(value *uint256.Int) ([]Event, error)) ([]Event, error) {
	value := call.Value
	if nil == value {
		value = uint256.NewInt(0)
	}
	if !payable && !value.IsZero() {
		return nil, fault.NotPayable
	}

	s.Lock()
	defer s.Unlock()

	err := s.store.Begin()
	if nil != err {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			s.store.Abort()
		}
	}()

	if s.ledger.Nonce(call.From) != call.Nonce {
		return nil, fault.InvalidNonce
	}

	events, err := fn(value)
	if nil != err {
		return nil, err
	}

	s.ledger.IncrementNonce(call.From)

	err = s.store.Commit()
	if nil != err {
		s.log.Errorf("commit error: %s", err)
		return nil, err
	}
	committed = true

	for _, e := range events {
		s.publisher.Publish(e)
	}
	return events, nil
}

// RegisterDevice - append a device to the caller's list
func (s *Service) RegisterDevice(call Call, deviceId []byte, dailyPrice *uint256.Int) (uint64, error) {
	index := uint64(0)
	_, err := s.update(call, false, func(*uint256.Int) ([]Event, error) {
		n, err := s.registry.Register(call.From, deviceId, dailyPrice)
		if nil != err {
			return nil, err
		}
		index = n
		owner := call.From
		return []Event{{
			Name:     EventDeviceRegistered,
			Owner:    &owner,
			DeviceId: deviceId,
			Index:    &n,
			Value:    dailyPrice.Dec(),
			Time:     s.ledger.Now(),
		}}, nil
	})
	if nil != err {
		return 0, err
	}

	s.Statistics.Registrations.Increment()
	s.log.Infof("register device: %x  owner: %s  index: %d  price: %s", deviceId, call.From.Hex(), index, dailyPrice.Dec())
	return index, nil
}
