// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors returned from a call to the access control service are
// caller-level failures: the call did not commit any state.  Business
// rule rejections (unknown device, fee too low, bad request) are not
// errors, they are reported as outcomes.
package fault
