// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/fixtures"
	"github.com/bitmark-inc/accessd/storage"
)

func setup(t *testing.T) (*storage.Store, string) {
	fixtures.SetupTestLogger()
	name := fixtures.Database("storage")
	s, created, err := storage.Open(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	assert.True(t, created, "new database not flagged as created")
	return s, name
}

func teardown(s *storage.Store) {
	s.Close()
	fixtures.TeardownTestLogger()
}

func TestCommitPersists(t *testing.T) {
	s, name := setup(t)
	defer teardown(s)

	p := s.Pool.TestData

	assert.Nil(t, s.Begin(), "begin")
	p.Put([]byte("key-one"), []byte("data-one"))
	p.PutN([]byte("key-two"), 42)
	p.Put([]byte("key-remove-me"), []byte("to be deleted"))
	p.Delete([]byte("key-remove-me"))

	// pending writes are visible inside the transaction
	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "pending get")
	assert.False(t, p.Has([]byte("key-remove-me")), "pending delete")

	// but not to iteration
	n := 0
	p.Iterate(func(key []byte, value []byte) bool {
		n += 1
		return true
	})
	assert.Equal(t, 0, n, "uncommitted data iterated")

	assert.Nil(t, s.Commit(), "commit")

	v, found := p.GetN([]byte("key-two"))
	assert.True(t, found, "key-two not found")
	assert.Equal(t, uint64(42), v, "wrong n")

	// reopen keeps data
	s.Close()
	s2, created, err := storage.Open(name, storage.ReadWrite)
	assert.Nil(t, err, "reopen")
	assert.False(t, created, "reopened database flagged as created")
	defer s2.Close()

	assert.Equal(t, []byte("data-one"), s2.Pool.TestData.Get([]byte("key-one")), "after reopen")
	assert.Nil(t, s2.Pool.TestData.Get([]byte("key-remove-me")), "deleted key after reopen")
}

func TestAbortDiscards(t *testing.T) {
	s, _ := setup(t)
	defer teardown(s)

	p := s.Pool.TestData

	assert.Nil(t, s.Begin(), "begin")
	p.Put([]byte("kept"), []byte("yes"))
	assert.Nil(t, s.Commit(), "commit")

	assert.Nil(t, s.Begin(), "begin")
	p.Put([]byte("discarded"), []byte("no"))
	p.Delete([]byte("kept"))
	s.Abort()

	assert.Nil(t, p.Get([]byte("discarded")), "aborted write visible")
	assert.True(t, p.Has([]byte("kept")), "aborted delete applied")
	assert.False(t, s.InTransaction(), "still in transaction")
}

func TestTransactionState(t *testing.T) {
	s, _ := setup(t)
	defer teardown(s)

	assert.Equal(t, fault.TransactionNotActive, s.Commit(), "commit without begin")
	assert.Nil(t, s.Begin(), "begin")
	assert.Equal(t, fault.TransactionAlreadyActive, s.Begin(), "nested begin")
	assert.Nil(t, s.Commit(), "commit")
}

func TestPutOutsideTransactionPanics(t *testing.T) {
	s, _ := setup(t)
	defer teardown(s)

	assert.Panics(t, func() {
		s.Pool.TestData.Put([]byte("k"), []byte("v"))
	}, "put without transaction")
}

func TestIterateIsPrefixedAndOrdered(t *testing.T) {
	s, _ := setup(t)
	defer teardown(s)

	assert.Nil(t, s.Begin(), "begin")
	s.Pool.TestData.Put([]byte("b"), []byte("2"))
	s.Pool.TestData.Put([]byte("a"), []byte("1"))
	s.Pool.TestData.Put([]byte("c"), []byte("3"))
	s.Pool.Balances.Put([]byte("a"), []byte("other pool"))
	assert.Nil(t, s.Commit(), "commit")

	keys := []string{}
	s.Pool.TestData.Iterate(func(key []byte, value []byte) bool {
		keys = append(keys, string(key))
		return len(keys) < 2
	})
	assert.Equal(t, []string{"a", "b"}, keys, "wrong iteration")

	last, found := s.Pool.TestData.LastElement()
	assert.True(t, found, "no last element")
	assert.Equal(t, []byte("c"), last.Key, "wrong last key")
	assert.Equal(t, []byte("3"), last.Value, "wrong last value")
}

func TestGetNTruncatedPanics(t *testing.T) {
	s, _ := setup(t)
	defer teardown(s)

	assert.Nil(t, s.Begin(), "begin")
	s.Pool.TestData.Put([]byte("short"), []byte{1, 2, 3})
	assert.Nil(t, s.Commit(), "commit")

	assert.Panics(t, func() {
		s.Pool.TestData.GetN([]byte("short"))
	}, "truncated record")
}
