// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/fixtures"
	"github.com/bitmark-inc/accessd/request"
	"github.com/bitmark-inc/accessd/storage"
)

func setupBook(t *testing.T) (*storage.Store, *request.Book) {
	fixtures.SetupTestLogger()
	s, _, err := storage.Open(fixtures.Database("request"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s, request.New(s.Pool)
}

func teardownBook(s *storage.Store) {
	s.Close()
	fixtures.TeardownTestLogger()
}

func makeRequest(nonce uint64) *request.DataRequest {
	return &request.DataRequest{
		TxId:      request.MakeTxId(fixtures.Requester.Address, nonce),
		Requester: fixtures.Requester.Address,
		Owner:     fixtures.Owner.Address,
		DeviceId:  []byte{0x11},
		FromTime:  100,
		ToTime:    200,
		Api:       "api",
		Value:     uint256.NewInt(nonce),
		Status:    request.Requested,
		CreatedAt: 100 + nonce,
	}
}

func TestBookInbox(t *testing.T) {
	s, b := setupBook(t)
	defer teardownBook(s)

	assert.Nil(t, s.Begin(), "begin")
	for i := uint64(0); i < 5; i += 1 {
		assert.Nil(t, b.Create(makeRequest(i)), "create %d", i)
	}
	assert.Equal(t, fault.TransactionAlreadyActive, b.Create(makeRequest(0)), "duplicate tx id")
	assert.Nil(t, s.Commit(), "commit")

	owner := fixtures.Owner.Address
	assert.Equal(t, uint64(5), b.Count(owner), "count")

	page, next, err := b.List(owner, 0, 2)
	assert.Nil(t, err, "list")
	assert.Equal(t, 2, len(page), "page size")
	assert.Equal(t, uint64(2), next, "next")
	assert.Equal(t, uint64(100), page[0].CreatedAt, "arrival order")

	page, next, err = b.List(owner, 4, 10)
	assert.Nil(t, err, "last page")
	assert.Equal(t, 1, len(page), "last page size")
	assert.Equal(t, uint64(5), next, "next at end")

	page, _, err = b.List(fixtures.Other.Address, 0, 10)
	assert.Nil(t, err, "empty inbox")
	assert.Equal(t, 0, len(page), "empty inbox size")

	_, _, err = b.List(owner, 0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestBookUpdate(t *testing.T) {
	s, b := setupBook(t)
	defer teardownBook(s)

	r := makeRequest(1)

	assert.Nil(t, s.Begin(), "begin")
	assert.Equal(t, fault.RequestNotFound, b.Update(r), "update unknown")
	assert.Nil(t, b.Create(r), "create")
	r.Status = request.DataSent
	r.DataHash = []byte{1, 2, 3}
	assert.Nil(t, b.Update(r), "update")
	assert.Nil(t, s.Commit(), "commit")

	got, err := b.Get(r.TxId)
	assert.Nil(t, err, "get")
	assert.Equal(t, request.DataSent, got.Status, "status")
	assert.Equal(t, []byte{1, 2, 3}, got.DataHash, "data hash")

	_, err = b.Get(request.MakeTxId(fixtures.Other.Address, 0))
	assert.Equal(t, fault.RequestNotFound, err, "unknown")
}

func TestBookExpiry(t *testing.T) {
	s, b := setupBook(t)
	defer teardownBook(s)

	r1 := makeRequest(1)
	r2 := makeRequest(2)

	assert.Nil(t, s.Begin(), "begin")
	b.SetExpiry(r1.TxId, 1000)
	b.SetExpiry(r2.TxId, 2000)
	assert.Nil(t, s.Commit(), "commit")

	assert.Equal(t, 0, len(b.Expired(999)), "none expired")
	expired := b.Expired(1000)
	assert.Equal(t, 1, len(expired), "one expired")
	assert.Equal(t, r1.TxId, expired[0], "wrong expired")

	at, found := b.ExpiresAt(r2.TxId)
	assert.True(t, found, "expiry of r2")
	assert.Equal(t, uint64(2000), at, "expiry time")

	assert.Nil(t, s.Begin(), "begin")
	b.ClearExpiry(r1.TxId)
	assert.Nil(t, s.Commit(), "commit")

	assert.Equal(t, 1, len(b.Expired(5000)), "after clear")
}
