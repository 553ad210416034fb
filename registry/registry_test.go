// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/fixtures"
	"github.com/bitmark-inc/accessd/registry"
	"github.com/bitmark-inc/accessd/storage"
)

func setup(t *testing.T) (*storage.Store, *registry.Registry) {
	fixtures.SetupTestLogger()
	s, _, err := storage.Open(fixtures.Database("registry"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return s, registry.New(s.Pool)
}

func teardown(s *storage.Store) {
	s.Close()
	fixtures.TeardownTestLogger()
}

func TestRegisterAndList(t *testing.T) {
	s, r := setup(t)
	defer teardown(s)

	owner := fixtures.Owner.Address

	assert.Nil(t, s.Begin(), "begin")
	n, err := r.Register(owner, []byte{0x11}, uint256.NewInt(2000000000))
	assert.Nil(t, err, "register first")
	assert.Equal(t, uint64(0), n, "first index")

	n, err = r.Register(owner, []byte{0x22}, uint256.NewInt(0))
	assert.Nil(t, err, "register zero price")
	assert.Equal(t, uint64(1), n, "second index")

	// duplicate id is appended
	n, err = r.Register(owner, []byte{0x11}, uint256.NewInt(7))
	assert.Nil(t, err, "register duplicate")
	assert.Equal(t, uint64(2), n, "duplicate index")
	assert.Nil(t, s.Commit(), "commit")

	assert.Equal(t, uint64(3), r.Count(owner), "count")
	assert.Equal(t, uint64(0), r.Count(fixtures.Other.Address), "other owner count")

	d, err := r.Get(owner, 1)
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte{0x22}, d.DeviceId, "device id")
	assert.True(t, d.DailyPrice.IsZero(), "price")
	assert.Equal(t, owner, d.Owner, "owner")

	_, err = r.Get(owner, 3)
	assert.Equal(t, fault.DeviceNotFound, err, "out of range")

	// first matching entry wins
	d, index, found := r.Lookup(owner, []byte{0x11})
	assert.True(t, found, "lookup")
	assert.Equal(t, uint64(0), index, "lookup index")
	assert.Equal(t, uint256.NewInt(2000000000), d.DailyPrice, "lookup price")

	_, _, found = r.Lookup(owner, []byte{0x33})
	assert.False(t, found, "unknown id")
	_, _, found = r.Lookup(fixtures.Other.Address, []byte{0x11})
	assert.False(t, found, "id of another owner")
}

func TestRegisterValidation(t *testing.T) {
	s, r := setup(t)
	defer teardown(s)

	owner := fixtures.Owner.Address

	assert.Nil(t, s.Begin(), "begin")
	defer s.Abort()

	_, err := r.Register(owner, nil, uint256.NewInt(1))
	assert.Equal(t, fault.DeviceIdLength, err, "empty id")

	_, err = r.Register(owner, bytes.Repeat([]byte{1}, 65), uint256.NewInt(1))
	assert.Equal(t, fault.DeviceIdLength, err, "long id")

	n, err := r.Register(owner, bytes.Repeat([]byte{1}, 64), uint256.NewInt(1))
	assert.Nil(t, err, "maximum id")
	assert.Equal(t, uint64(0), n, "index after rejected registrations")
}
