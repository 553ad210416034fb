// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"github.com/holiman/uint256"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/accessd/accesscontrol"
	"github.com/bitmark-inc/accessd/counter"
	"github.com/bitmark-inc/accessd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -source=node.go -destination=../mocks/status.go -package=mocks

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Status - service state reported by Info
type Status interface {
	MinInterval() uint64
	EscrowExpiry() uint64
	EscrowTotal() *uint256.Int
}

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Start      time.Time
	Version    string
	Status     Status
	Statistics *accesscontrol.Statistics
	PublicKey  []byte
	counter    *counter.Counter
}

// New - create the Node RPC type
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, status Status, statistics *accesscontrol.Statistics, publicKey []byte) *Node {
	return &Node{
		Log:        log,
		Limiter:    ratelimit.New(rateLimitNode, rateBurstNode),
		Start:      start,
		Version:    version,
		Status:     status,
		Statistics: statistics,
		PublicKey:  publicKey,
		counter:    counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version      string   `json:"version"`
	Uptime       string   `json:"uptime"`
	RPCs         uint64   `json:"rpcs"`
	MinInterval  uint64   `json:"minInterval"`
	EscrowExpiry uint64   `json:"escrowExpiry"`
	EscrowTotal  string   `json:"escrowTotal"`
	PublicKey    string   `json:"publicKey,omitempty"`
	Counters     Counters `json:"counters"`
}

// Counters - operation totals since start
type Counters struct {
	Registrations  uint64 `json:"registrations"`
	Requests       uint64 `json:"requests"`
	Success        uint64 `json:"success"`
	DeviceNotFound uint64 `json:"deviceNotFound"`
	NotEnoughMoney uint64 `json:"notEnoughMoney"`
	BadRequest     uint64 `json:"badRequest"`
	Completed      uint64 `json:"completed"`
	Refunded       uint64 `json:"refunded"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.MinInterval = node.Status.MinInterval()
	reply.EscrowExpiry = node.Status.EscrowExpiry()
	reply.EscrowTotal = node.Status.EscrowTotal().Dec()
	if 0 != len(node.PublicKey) {
		reply.PublicKey = hex.EncodeToString(node.PublicKey)
	}

	s := node.Statistics
	reply.Counters = Counters{
		Registrations:  s.Registrations.Uint64(),
		Requests:       s.Requests.Uint64(),
		Success:        s.Success.Uint64(),
		DeviceNotFound: s.DeviceNotFound.Uint64(),
		NotEnoughMoney: s.NotEnoughMoney.Uint64(),
		BadRequest:     s.BadRequest.Uint64(),
		Completed:      s.Completed.Uint64(),
		Refunded:       s.Refunded.Uint64(),
	}
	return nil
}
