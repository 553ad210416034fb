// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/constants"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/storage"
	"github.com/bitmark-inc/accessd/util"
	"github.com/bitmark-inc/logger"
)

// Device - a data source offered by an owner at a daily price
type Device struct {
	Owner      account.Address
	DeviceId   []byte
	DailyPrice *uint256.Int
}

// Registry - per owner append only device lists
type Registry struct {
	devices storage.Handle
	count   storage.Handle
	index   storage.Handle
}

// New - registry on the pools of a store
func New(pools storage.Pools) *Registry {
	return &Registry{
		devices: pools.Devices,
		count:   pools.DeviceCount,
		index:   pools.DeviceIndex,
	}
}

// ValidDeviceId - check the size of a device id
func ValidDeviceId(deviceId []byte) error {
	if 0 == len(deviceId) || len(deviceId) > constants.MaximumDeviceIdLength {
		return fault.DeviceIdLength
	}
	return nil
}

// Register - append a device to the owner's list
//
// duplicate ids are kept; lookup by id resolves the first
// returns the index of the new device
func (r *Registry) Register(owner account.Address, deviceId []byte, dailyPrice *uint256.Int) (uint64, error) {
	err := ValidDeviceId(deviceId)
	if nil != err {
		return 0, err
	}
	if nil == dailyPrice {
		return 0, fault.InvalidValue
	}

	n := r.Count(owner)

	price := dailyPrice.Bytes32()
	packed := util.AppendBytes(nil, deviceId)
	packed = append(packed, price[:]...)

	r.devices.Put(deviceKey(owner, n), packed)
	r.count.PutN(owner.Bytes(), n+1)

	iKey := indexKey(owner, deviceId)
	if !r.index.Has(iKey) {
		r.index.PutN(iKey, n)
	}
	return n, nil
}

// Count - number of devices registered by an owner
func (r *Registry) Count(owner account.Address) uint64 {
	n, _ := r.count.GetN(owner.Bytes())
	return n
}

// Get - device at a position in the owner's list
func (r *Registry) Get(owner account.Address, index uint64) (*Device, error) {
	packed := r.devices.Get(deviceKey(owner, index))
	if nil == packed {
		return nil, fault.DeviceNotFound
	}
	return unpack(owner, packed), nil
}

// Lookup - first device of an owner with the given id
func (r *Registry) Lookup(owner account.Address, deviceId []byte) (*Device, uint64, bool) {
	n, found := r.index.GetN(indexKey(owner, deviceId))
	if !found {
		return nil, 0, false
	}
	d, err := r.Get(owner, n)
	if nil != err {
		logger.Panicf("registry: index for owner: %s  points to missing device: %d", owner.Hex(), n)
	}
	return d, n, true
}

func unpack(owner account.Address, packed []byte) *Device {
	deviceId, n := util.ExtractBytes(packed, constants.MaximumDeviceIdLength)
	if 0 == n || len(packed) != n+32 {
		logger.Panicf("registry: corrupt device record for owner: %s  data: %x", owner.Hex(), packed)
	}
	return &Device{
		Owner:      owner,
		DeviceId:   deviceId,
		DailyPrice: new(uint256.Int).SetBytes32(packed[n:]),
	}
}

// owner ++ n
func deviceKey(owner account.Address, n uint64) []byte {
	key := make([]byte, 0, account.AddressLength+8)
	key = append(key, owner.Bytes()...)
	return util.AppendUint64(key, n)
}

// owner ++ SHA3-256(deviceId)
func indexKey(owner account.Address, deviceId []byte) []byte {
	digest := sha3.Sum256(deviceId)
	key := make([]byte, 0, account.AddressLength+len(digest))
	key = append(key, owner.Bytes()...)
	return append(key, digest[:]...)
}
