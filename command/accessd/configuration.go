// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/configuration"
	"github.com/bitmark-inc/accessd/constants"
	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/publish"
	"github.com/bitmark-inc/accessd/rpc/listeners"
	"github.com/bitmark-inc/accessd/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "accessd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "accessd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the leveldb store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// AllocationType - an initial balance
type AllocationType struct {
	Address string `gluamapper:"address" json:"address"`
	Balance string `gluamapper:"balance" json:"balance"`
}

// AccessType - escrow and ledger settings
//
// times are in seconds, a zero escrow_expiry disables refunds
type AccessType struct {
	EscrowExpiry   uint64           `gluamapper:"escrow_expiry" json:"escrow_expiry"`
	ExpiryInterval uint64           `gluamapper:"expiry_interval" json:"expiry_interval"`
	Allocations    []AllocationType `gluamapper:"allocations" json:"allocations"`
}

// Configuration - the contents of the Lua file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Access     AccessType                 `gluamapper:"access" json:"access"`
	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// EscrowExpiry - as a duration
func (c *Configuration) EscrowExpiry() time.Duration {
	return time.Duration(c.Access.EscrowExpiry) * time.Second
}

// ExpiryInterval - as a duration
func (c *Configuration) ExpiryInterval() time.Duration {
	return time.Duration(c.Access.ExpiryInterval) * time.Second
}

// Allocations - validated initial balances
func (c *Configuration) Allocations() (map[account.Address]*uint256.Int, error) {
	allocations := make(map[account.Address]*uint256.Int)
	for _, a := range c.Access.Allocations {
		address, err := account.ParseAddress(a.Address)
		if nil != err {
			return nil, err
		}
		balance, err := uint256.FromDecimal(a.Balance)
		if nil != err {
			return nil, fault.InvalidValue
		}
		if previous, ok := allocations[address]; ok {
			sum, overflow := new(uint256.Int).AddOverflow(previous, balance)
			if overflow {
				return nil, fault.ValueOverflow
			}
			balance = sum
		}
		allocations[address] = balance
	}
	return allocations, nil
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Access: AccessType{
			EscrowExpiry:   uint64(constants.DefaultEscrowExpiry / time.Second),
			ExpiryInterval: uint64(constants.DefaultExpiryInterval / time.Second),
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// plain broadcasts unless both keys are configured
		Publishing: publish.Configuration{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, nil); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	if 0 != options.Access.EscrowExpiry && 0 == options.Access.ExpiryInterval {
		return nil, fmt.Errorf("expiry_interval must be set when escrow_expiry is enabled")
	}

	// validate now so a bad allocation is reported before the database is created
	if _, err := options.Allocations(); nil != err {
		return nil, fmt.Errorf("allocations: %s", err)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	if ("" == options.Publishing.PublicKey) != ("" == options.Publishing.PrivateKey) {
		return nil, fmt.Errorf("publishing: both private_key and public_key are required for encryption")
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
