// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request

import (
	"github.com/bitmark-inc/accessd/fault"
)

// Status - life cycle of a data request
type Status uint8

// Requested -> DataSent -> Completed, or Requested -> Rejected on expiry
const (
	Requested Status = iota
	DataSent
	Completed
	Rejected
	statusLimit
)

var statusNames = []string{
	Requested: "Requested",
	DataSent:  "DataSent",
	Completed: "Completed",
	Rejected:  "Rejected",
}

// String - printable status
func (s Status) String() string {
	if s >= statusLimit {
		return "Unknown"
	}
	return statusNames[s]
}

// MarshalText - status as its name
func (s Status) MarshalText() ([]byte, error) {
	if s >= statusLimit {
		return nil, fault.WrongRequestStatus
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText - status from its name
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fault.WrongRequestStatus
}
