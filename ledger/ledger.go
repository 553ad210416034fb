// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/storage"
	"github.com/bitmark-inc/logger"
)

// Clock - source of the current time in unix seconds
type Clock interface {
	Now() uint64
}

// SystemClock - wall clock time
type SystemClock struct{}

// Now - unix seconds
func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// Ledger - the value primitives the access service relies on
//
// all writes happen inside the caller's storage transaction
type Ledger interface {
	Now() uint64
	Balance(account.Address) *uint256.Int
	Credit(account.Address, *uint256.Int) error
	Hold(account.Address, *uint256.Int) error
	Release(account.Address, *uint256.Int) error
	EscrowTotal() *uint256.Int
	Nonce(account.Address) uint64
	IncrementNonce(account.Address)
}

// Local - ledger kept in the service's own store
type Local struct {
	clock    Clock
	balances storage.Handle
	escrow   storage.Handle
	nonces   storage.Handle
}

// the single key of the escrow total
var escrowKey = []byte{}

// New - ledger on the pools of a store
func New(pools storage.Pools, clock Clock) *Local {
	return NewWithHandles(pools.Balances, pools.Escrow, pools.Nonces, clock)
}

// NewWithHandles - ledger on explicit pool handles
func NewWithHandles(balances storage.Handle, escrow storage.Handle, nonces storage.Handle, clock Clock) *Local {
	if nil == clock {
		clock = SystemClock{}
	}
	return &Local{
		clock:    clock,
		balances: balances,
		escrow:   escrow,
		nonces:   nonces,
	}
}

// Now - current time
func (l *Local) Now() uint64 {
	return l.clock.Now()
}

// Balance - spendable value of an address
func (l *Local) Balance(address account.Address) *uint256.Int {
	return getValue(l.balances, address.Bytes())
}

// EscrowTotal - value currently held for open requests
func (l *Local) EscrowTotal() *uint256.Int {
	return getValue(l.escrow, escrowKey)
}

// Credit - add value to an address
func (l *Local) Credit(address account.Address, value *uint256.Int) error {
	balance := l.Balance(address)
	if _, overflow := balance.AddOverflow(balance, value); overflow {
		return fault.ValueOverflow
	}
	putValue(l.balances, address.Bytes(), balance)
	return nil
}

// Hold - move value from an address into escrow
func (l *Local) Hold(from account.Address, value *uint256.Int) error {
	balance := l.Balance(from)
	if balance.Lt(value) {
		return fault.InsufficientBalance
	}

	total := l.EscrowTotal()
	if _, overflow := total.AddOverflow(total, value); overflow {
		return fault.ValueOverflow
	}

	balance.Sub(balance, value)
	putValue(l.balances, from.Bytes(), balance)
	putValue(l.escrow, escrowKey, total)
	return nil
}

// Release - move value out of escrow to an address
func (l *Local) Release(to account.Address, value *uint256.Int) error {
	total := l.EscrowTotal()
	if total.Lt(value) {
		logger.Criticalf("escrow total: %s  less than release: %s", total.Dec(), value.Dec())
		return fault.EscrowUnderflow
	}
	total.Sub(total, value)

	err := l.Credit(to, value)
	if nil != err {
		return err
	}
	putValue(l.escrow, escrowKey, total)
	return nil
}

// Nonce - number of committed calls from an address
func (l *Local) Nonce(address account.Address) uint64 {
	n, _ := l.nonces.GetN(address.Bytes())
	return n
}

// IncrementNonce - count one more committed call
func (l *Local) IncrementNonce(address account.Address) {
	l.nonces.PutN(address.Bytes(), l.Nonce(address)+1)
}

func getValue(h storage.Handle, key []byte) *uint256.Int {
	v := h.Get(key)
	if nil == v {
		return uint256.NewInt(0)
	}
	if 32 != len(v) {
		logger.Panicf("ledger: value record for: %x  has length: %d", key, len(v))
	}
	return new(uint256.Int).SetBytes32(v)
}

func putValue(h storage.Handle, key []byte, value *uint256.Int) {
	b := value.Bytes32()
	h.Put(key, b[:])
}
