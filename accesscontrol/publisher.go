// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol

import (
	"encoding/json"

	"github.com/bitmark-inc/accessd/messagebus"
	"github.com/bitmark-inc/logger"
)

// Publisher - receives every event after its call commits
type Publisher interface {
	Publish(Event)
}

type discard struct{}

func (discard) Publish(Event) {}

// BusPublisher - send events to a message bus as
// command: event name, parameters: [JSON]
type BusPublisher struct {
	log *logger.L
	bus *messagebus.BroadcastQueue
}

// NewBusPublisher - publisher onto a bus
func NewBusPublisher(log *logger.L, bus *messagebus.BroadcastQueue) *BusPublisher {
	return &BusPublisher{
		log: log,
		bus: bus,
	}
}

// Publish - encode and send
func (p *BusPublisher) Publish(e Event) {
	data, err := json.Marshal(e)
	if nil != err {
		p.log.Errorf("publish: event: %s  error: %s", e.Name, err)
		return
	}
	p.log.Tracef("publish: %s  %s", e.Name, data)
	p.bus.Send(e.Name, data)
}
