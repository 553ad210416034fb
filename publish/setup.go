// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/accessd/background"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/messagebus"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting events

	bus *messagebus.BroadcastQueue

	publicKey []byte

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start broadcasting the events of a bus
//
// an empty broadcast list starts nothing
func Initialise(configuration *Configuration, bus *messagebus.BroadcastQueue) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses")
		return nil
	}

	privateKey := []byte(nil)
	if "" != configuration.PrivateKey {
		key, err := ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		privateKey = key

		publicKey, err := ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		globalData.log.Infof("public key: %x", publicKey)
		globalData.publicKey = publicKey
	}

	globalData.bus = bus
	globalData.brdc.queue = bus.Chan(0)

	err := globalData.brdc.initialise(globalData.log, privateKey, configuration.Broadcast)
	if nil != err {
		bus.Release(globalData.brdc.queue)
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// PublicKey - the CURVE public key subscribers need, nil for plain sockets
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.publicKey
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()
	globalData.bus.Release(globalData.brdc.queue)

	// finally...
	globalData.initialised = false
	globalData.publicKey = nil

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
