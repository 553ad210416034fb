// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command with its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - deliver each message to every current listener
//
// messages sent while nothing is listening are dropped
type BroadcastQueue struct {
	sync.RWMutex
	in        chan Message
	listeners []chan Message
	done      chan struct{}
}

// New - a running broadcast queue
func New() *BroadcastQueue {
	b := &BroadcastQueue{
		in:   make(chan Message, queueSize),
		done: make(chan struct{}),
	}
	go b.run()
	return b
}

// Send - queue a message for all listeners
func (b *BroadcastQueue) Send(command string, parameters ...[]byte) {
	b.in <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - add a listener with its own buffer
//
// size zero uses the default buffer size
func (b *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queueSize
	}
	c := make(chan Message, size)

	b.Lock()
	b.listeners = append(b.listeners, c)
	b.Unlock()
	return c
}

// Release - remove a listener and close its channel
func (b *BroadcastQueue) Release(c <-chan Message) {
	b.Lock()
	defer b.Unlock()
	for i, l := range b.listeners {
		if (<-chan Message)(l) == c {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			close(l)
			return
		}
	}
}

// Close - stop delivery and close all listeners
//
// no Send may follow Close
func (b *BroadcastQueue) Close() {
	close(b.in)
	<-b.done
}

func (b *BroadcastQueue) run() {
	for item := range b.in {
		b.RLock()
		for _, l := range b.listeners {
			select {
			case l <- item:
			default: // a full listener misses the message
			}
		}
		b.RUnlock()
	}

	b.Lock()
	for _, l := range b.listeners {
		close(l)
	}
	b.listeners = nil
	b.Unlock()
	close(b.done)
}
