// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/accessd/fault"
)

// Pools - the set of pools of one store
//
// note all must be exported (i.e. initial capital) or opening will fail
type Pools struct {
	Devices           *PoolHandle `prefix:"D"`
	DeviceCount       *PoolHandle `prefix:"N"`
	DeviceIndex       *PoolHandle `prefix:"I"`
	Requests          *PoolHandle `prefix:"R"`
	OwnerRequests     *PoolHandle `prefix:"L"`
	OwnerRequestCount *PoolHandle `prefix:"M"`
	Expiring          *PoolHandle `prefix:"X"`
	AbuseState        *PoolHandle `prefix:"A"`
	BanRecords        *PoolHandle `prefix:"B"`
	Balances          *PoolHandle `prefix:"W"`
	Escrow            *PoolHandle `prefix:"E"`
	Nonces            *PoolHandle `prefix:"O"`
	TestData          *PoolHandle `prefix:"Z"`
}

// Store - an open database and its pools
type Store struct {
	Pool   Pools
	db     *leveldb.DB
	access *AccessData
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open (or create) the database
//
// returns true in the second parameter if the database was empty
func Open(database string, readOnly bool) (*Store, bool, error) {

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, false, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		return nil, false, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if readOnly && version != currentDBVersion {
		return nil, false, fmt.Errorf("database version: %d  current: %d", version, currentDBVersion)
	}

	created := false
	if 0 == version {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, false, err
		}
		created = true
	}

	s := &Store{
		db:     db,
		access: newDA(db),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, false, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: s.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return s, created, nil
}

// Close - close the database connection
func (s *Store) Close() {
	if nil == s || nil == s.db {
		return
	}
	s.access.Abort()
	s.db.Close()
	s.db = nil
}

// Begin - start a transaction
func (s *Store) Begin() error {
	if nil == s.db {
		return fault.DatabaseIsNotSet
	}
	return s.access.Begin()
}

// Commit - write the transaction
func (s *Store) Commit() error {
	if nil == s.db {
		return fault.DatabaseIsNotSet
	}
	return s.access.Commit()
}

// Abort - discard the transaction
func (s *Store) Abort() {
	s.access.Abort()
}

// InTransaction - true between Begin and Commit/Abort
func (s *Store) InTransaction() bool {
	return s.access.InUse()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
