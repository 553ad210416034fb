// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	ApiTooLong                   = LengthError("api label is too long")
	BanRecordNotFound            = NotFoundError("ban record not found")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DataHashLength               = LengthError("data hash length is invalid")
	DeviceIdLength               = LengthError("device id length is invalid")
	DeviceNotFound               = NotFoundError("device not found")
	EscrowExpiryDisabled         = ProcessError("escrow expiry is disabled")
	EscrowUnderflow              = RecordError("escrow total is less than the amount released")
	InsufficientBalance          = ProcessError("insufficient balance")
	InvalidAddress               = InvalidError("invalid address")
	InvalidCount                 = InvalidError("invalid count")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidNonce                 = InvalidError("invalid nonce")
	InvalidOutcome               = InvalidError("invalid outcome")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKey             = InvalidError("invalid public key")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidTimeWindow            = InvalidError("from time is after to time")
	InvalidValue                 = InvalidError("invalid value")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotDeviceOwner               = InvalidError("caller is not the device owner of the request")
	NotInitialised               = NotFoundError("not initialised")
	NotPayable                   = InvalidError("operation does not accept value")
	NotRequester                 = InvalidError("caller is not the requester")
	OwnerMismatch                = InvalidError("owner does not match request")
	PublicKeyMismatch            = InvalidError("public key does not match requester address")
	RateLimiting                 = InvalidError("rate limiting")
	RequestNotExpired            = ProcessError("request has not expired")
	RequestNotFound              = NotFoundError("request not found")
	RequesterMismatch            = InvalidError("requester does not match request")
	TransactionAlreadyActive     = ProcessError("transaction already active")
	TransactionNotActive         = ProcessError("transaction not active")
	ValueOverflow                = InvalidError("value overflow")
	WrongRequestStatus           = ProcessError("request is not in the expected state")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
