// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accesscontrol

import (
	"time"

	"github.com/bitmark-inc/accessd/background"
	"github.com/bitmark-inc/logger"
)

type expiryData struct {
	log      *logger.L
	service  *Service
	interval time.Duration
}

// NewExpiry - background process refunding expired requests
func NewExpiry(log *logger.L, service *Service, interval time.Duration) background.Process {
	return &expiryData{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (state *expiryData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log

	log.Info("starting…")

	ticker := time.NewTicker(state.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n, err := state.service.Expire()
			if nil != err {
				log.Errorf("expire error: %s", err)
			} else if 0 != n {
				log.Debugf("expired: %d", n)
			}
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
