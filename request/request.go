// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/constants"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/util"
)

// DataRequest - an escrowed request for a time window of device data
type DataRequest struct {
	TxId      common.Hash
	Requester account.Address
	Owner     account.Address
	DeviceId  []byte
	FromTime  uint64
	ToTime    uint64
	Api       string
	Value     *uint256.Int
	Status    Status
	DataHash  []byte
	CreatedAt uint64
	SentAt    uint64
	ClosedAt  uint64
}

// MakeTxId - unique id of the call that created a request
//
//   keccak256(caller ++ nonce)
func MakeTxId(caller account.Address, nonce uint64) common.Hash {
	return crypto.Keccak256Hash(caller.Bytes(), util.Uint64ToBytes(nonce))
}

// Fee - daily price times the number of days touched by the window
//
//   price × (floor((to − from) / 86400) + 1)
//
// second result is true on overflow
func Fee(dailyPrice *uint256.Int, fromTime uint64, toTime uint64) (*uint256.Int, bool) {
	if toTime < fromTime {
		return nil, true
	}
	days := uint256.NewInt((toTime-fromTime)/constants.SecondsPerDay + 1)
	return new(uint256.Int).MulOverflow(dailyPrice, days)
}

// Pack - binary form of a request, the TxId is the storage key
//
//   requester ++ owner ++ deviceId ++ from ++ to ++ api ++ value ++
//   status ++ dataHash ++ createdAt ++ sentAt ++ closedAt
func (r *DataRequest) Pack() []byte {
	buffer := make([]byte, 0, 200)
	buffer = append(buffer, r.Requester.Bytes()...)
	buffer = append(buffer, r.Owner.Bytes()...)
	buffer = util.AppendBytes(buffer, r.DeviceId)
	buffer = util.AppendUint64(buffer, r.FromTime)
	buffer = util.AppendUint64(buffer, r.ToTime)
	buffer = util.AppendBytes(buffer, []byte(r.Api))
	value := r.Value.Bytes32()
	buffer = append(buffer, value[:]...)
	buffer = append(buffer, byte(r.Status))
	buffer = util.AppendBytes(buffer, r.DataHash)
	buffer = util.AppendUint64(buffer, r.CreatedAt)
	buffer = util.AppendUint64(buffer, r.SentAt)
	return util.AppendUint64(buffer, r.ClosedAt)
}

// Unpack - restore a request from its binary form
func Unpack(txId common.Hash, buffer []byte) (*DataRequest, error) {
	r := &DataRequest{
		TxId: txId,
	}

	n := 0
	if len(buffer) < 2*account.AddressLength {
		return nil, fault.RequestNotFound
	}
	r.Requester = common.BytesToAddress(buffer[0:account.AddressLength])
	r.Owner = common.BytesToAddress(buffer[account.AddressLength : 2*account.AddressLength])
	n += 2 * account.AddressLength

	deviceId, count := util.ExtractBytes(buffer[n:], constants.MaximumDeviceIdLength)
	if 0 == count {
		return nil, fault.DeviceIdLength
	}
	r.DeviceId = deviceId
	n += count

	if len(buffer) < n+16 {
		return nil, fault.InvalidTimeWindow
	}
	r.FromTime = binary.BigEndian.Uint64(buffer[n:])
	r.ToTime = binary.BigEndian.Uint64(buffer[n+8:])
	n += 16

	api, count := util.ExtractBytes(buffer[n:], constants.MaximumApiLength)
	if 0 == count {
		return nil, fault.ApiTooLong
	}
	r.Api = string(api)
	n += count

	if len(buffer) < n+33 {
		return nil, fault.InvalidValue
	}
	r.Value = new(uint256.Int).SetBytes32(buffer[n : n+32])
	r.Status = Status(buffer[n+32])
	if r.Status >= statusLimit {
		return nil, fault.WrongRequestStatus
	}
	n += 33

	dataHash, count := util.ExtractBytes(buffer[n:], constants.MaximumDataHashLength)
	if 0 == count {
		return nil, fault.DataHashLength
	}
	if 0 != len(dataHash) {
		r.DataHash = dataHash
	}
	n += count

	if len(buffer) != n+24 {
		return nil, fault.InvalidCount
	}
	r.CreatedAt = binary.BigEndian.Uint64(buffer[n:])
	r.SentAt = binary.BigEndian.Uint64(buffer[n+8:])
	r.ClosedAt = binary.BigEndian.Uint64(buffer[n+16:])

	return r, nil
}
