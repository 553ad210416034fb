// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/accessd/messagebus"
	"github.com/bitmark-inc/accessd/util"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
)

// to ensure only one auth start
var oneTimeAuthStart sync.Once

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
//
// nil privateKey gives plain PUB sockets, otherwise CURVE encrypted
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, broadcast []string) error {

	brdc.log = log

	log.Info("initialising…")

	if nil != privateKey {
		err := error(nil)
		oneTimeAuthStart.Do(func() {
			zmq.AuthSetVerbose(false)
			err = zmq.AuthStart()
		})
		if nil != err {
			log.Errorf("zmq auth start error: %s", err)
			return err
		}
	}

	ok := false
	defer func() {
		if !ok {
			brdc.close()
		}
	}()

	for i, address := range broadcast {
		bindTo, v6, err := util.CanonicalIPandPort("tcp://", address)
		if nil != err {
			log.Errorf("broadcast[%d]: %q  error: %s", i, address, err)
			return err
		}

		socket := brdc.socket4
		if v6 {
			socket = brdc.socket6
		}
		if nil == socket {
			socket, err = newServerSocket(privateKey, v6)
			if nil != err {
				return err
			}
			if v6 {
				brdc.socket6 = socket
			} else {
				brdc.socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}

	ok = true
	return nil
}

// create a PUB socket suitable for server side use
func newServerSocket(privateKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	if nil != privateKey {
		// allow any client to connect
		zmq.AuthCurveAdd(broadcasterZapDomain, zmq.CURVE_ALLOW_ANY)

		err = socket.SetCurveServer(1)
		if nil == err {
			err = socket.SetCurveSecretkey(string(privateKey))
		}
		if nil == err {
			err = socket.SetZapDomain(broadcasterZapDomain)
		}
		if nil != err {
			socket.Close()
			return nil, err
		}
	}

	err = socket.SetIpv6(v6)
	if nil == err {
		err = socket.SetLinger(0)
	}
	if nil != err {
		socket.Close()
		return nil, err
	}
	return socket, nil
}

// forward each bus message as [command, parameters...]
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s  data: %s", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}
	brdc.close()
	log.Info("stopped")
}

func (brdc *broadcaster) close() {
	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
}

// a failed send only loses this message
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flags := zmq.DONTWAIT
	if 0 != len(item.Parameters) {
		flags |= zmq.SNDMORE
	}
	_, err := socket.Send(item.Command, flags)
	if nil != err {
		brdc.log.Errorf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		if i == last {
			_, err = socket.SendBytes(p, zmq.DONTWAIT)
		} else {
			_, err = socket.SendBytes(p, zmq.SNDMORE|zmq.DONTWAIT)
		}
		if nil != err {
			brdc.log.Errorf("send: %s  parameter: %d  error: %s", item.Command, i, err)
			return
		}
	}
}
