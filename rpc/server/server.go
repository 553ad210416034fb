// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/accessd/accesscontrol"
	"github.com/bitmark-inc/accessd/counter"
	"github.com/bitmark-inc/accessd/rpc/access"
	"github.com/bitmark-inc/accessd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with the AccessControl and Node types
func Create(log *logger.L, version string, rpcCount *counter.Counter, service *accesscontrol.Service, publicKey []byte) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(access.New(log, service))
	_ = server.Register(node.New(log, start, version, rpcCount, service, &service.Statistics, publicKey))

	return server
}
