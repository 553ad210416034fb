// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Key - a test account
type Key struct {
	Private   *ecdsa.PrivateKey
	PublicKey []byte // 64 bytes, uncompressed without the 0x04 prefix
	Address   common.Address
}

var (
	Owner     Key
	Requester Key
	Other     Key
)

func init() {
	Owner = makeKey("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	Requester = makeKey("289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032")
	Other = makeKey("8a1f9a8f95be41cd7ccb6168179afb4504aefe388d1e14474d32c45c72ce7b7a")
}

func makeKey(s string) Key {
	privateKey, err := crypto.HexToECDSA(s)
	if nil != err {
		panic(err)
	}
	return Key{
		Private:   privateKey,
		PublicKey: crypto.FromECDSAPub(&privateKey.PublicKey)[1:],
		Address:   crypto.PubkeyToAddress(privateKey.PublicKey),
	}
}

// Clock - settable time source in unix seconds
type Clock struct {
	sync.Mutex
	now uint64
}

// NewClock - clock starting at the given time
func NewClock(now uint64) *Clock {
	return &Clock{now: now}
}

// Now - current fixture time
func (c *Clock) Now() uint64 {
	c.Lock()
	defer c.Unlock()
	return c.now
}

// Set - jump to a time
func (c *Clock) Set(now uint64) {
	c.Lock()
	c.now = now
	c.Unlock()
}

// Advance - move forward by some seconds
func (c *Clock) Advance(seconds uint64) {
	c.Lock()
	c.now += seconds
	c.Unlock()
}

// Database - a database name inside the test directory
func Database(name string) string {
	_ = os.MkdirAll(dir, 0700)
	return fmt.Sprintf("%s/%s.leveldb", dir, name)
}

var certificateOnce struct {
	sync.Once
	certificate string
	key         string
}

// Certificate - PEM certificate and key for TLS listener tests
func Certificate() (string, string) {
	certificateOnce.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("accessd testing", time.Now().Add(24*time.Hour), false, nil)
		if nil != err {
			panic(err)
		}
		certificateOnce.certificate = string(cert)
		certificateOnce.key = string(key)
	})
	return certificateOnce.certificate, certificateOnce.key
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
