// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/storage"
	"github.com/bitmark-inc/accessd/util"
	"github.com/bitmark-inc/logger"
)

// MaximumListCount - largest page returned by List
const MaximumListCount = 100

// Book - persistent requests, the owner inboxes and the expiry index
type Book struct {
	requests   storage.Handle
	inbox      storage.Handle
	inboxCount storage.Handle
	expiring   storage.Handle
}

// New - book on the pools of a store
func New(pools storage.Pools) *Book {
	return &Book{
		requests:   pools.Requests,
		inbox:      pools.OwnerRequests,
		inboxCount: pools.OwnerRequestCount,
		expiring:   pools.Expiring,
	}
}

// Create - store a new request and add it to the owner's inbox
func (b *Book) Create(r *DataRequest) error {
	if b.requests.Has(r.TxId.Bytes()) {
		return fault.TransactionAlreadyActive
	}
	b.requests.Put(r.TxId.Bytes(), r.Pack())

	n, _ := b.inboxCount.GetN(r.Owner.Bytes())
	b.inbox.Put(inboxKey(r.Owner, n), r.TxId.Bytes())
	b.inboxCount.PutN(r.Owner.Bytes(), n+1)
	return nil
}

// Update - rewrite an existing request
func (b *Book) Update(r *DataRequest) error {
	if !b.requests.Has(r.TxId.Bytes()) {
		return fault.RequestNotFound
	}
	b.requests.Put(r.TxId.Bytes(), r.Pack())
	return nil
}

// Get - fetch a request
func (b *Book) Get(txId common.Hash) (*DataRequest, error) {
	packed := b.requests.Get(txId.Bytes())
	if nil == packed {
		return nil, fault.RequestNotFound
	}
	r, err := Unpack(txId, packed)
	if nil != err {
		logger.Panicf("request: corrupt record: %s  error: %s", txId.Hex(), err)
	}
	return r, nil
}

// Count - number of requests ever addressed to an owner
func (b *Book) Count(owner account.Address) uint64 {
	n, _ := b.inboxCount.GetN(owner.Bytes())
	return n
}

// List - requests addressed to an owner in arrival order
//
// returns the requests and the start of the next page
func (b *Book) List(owner account.Address, start uint64, count int) ([]*DataRequest, uint64, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, 0, fault.InvalidCount
	}

	total := b.Count(owner)
	result := make([]*DataRequest, 0, count)
	n := start
	for ; n < total && len(result) < count; n += 1 {
		txId := b.inbox.Get(inboxKey(owner, n))
		if nil == txId {
			logger.Panicf("request: inbox of: %s  missing entry: %d", owner.Hex(), n)
		}
		r, err := b.Get(common.BytesToHash(txId))
		if nil != err {
			return nil, 0, err
		}
		result = append(result, r)
	}
	return result, n, nil
}

// SetExpiry - mark a request as refundable after a time
func (b *Book) SetExpiry(txId common.Hash, expiresAt uint64) {
	b.expiring.PutN(txId.Bytes(), expiresAt)
}

// ClearExpiry - remove a request from the expiry index
func (b *Book) ClearExpiry(txId common.Hash) {
	b.expiring.Delete(txId.Bytes())
}

// ExpiresAt - time from which a request may be refunded
func (b *Book) ExpiresAt(txId common.Hash) (uint64, bool) {
	return b.expiring.GetN(txId.Bytes())
}

// Expired - committed requests whose expiry time is not after now
func (b *Book) Expired(now uint64) []common.Hash {
	result := []common.Hash{}
	b.expiring.Iterate(func(key []byte, value []byte) bool {
		if len(value) < 8 {
			logger.Panicf("request: corrupt expiry for: %x", key)
		}
		if binary.BigEndian.Uint64(value) <= now {
			result = append(result, common.BytesToHash(key))
		}
		return true
	})
	return result
}

// owner ++ n
func inboxKey(owner account.Address, n uint64) []byte {
	key := make([]byte, 0, account.AddressLength+8)
	key = append(key, owner.Bytes()...)
	return util.AppendUint64(key, n)
}
