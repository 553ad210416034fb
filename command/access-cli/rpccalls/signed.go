// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/accessd/account"
	"github.com/bitmark-inc/accessd/rpc/access"
)

// Signer - the key of the calling account
type Signer struct {
	PrivateKey *ecdsa.PrivateKey
	Address    account.Address
	PublicKey  []byte // 64 bytes, uncompressed without prefix
}

// NewSigner - signer from a hex private key
func NewSigner(hexKey string) (*Signer, error) {
	if len(hexKey) > 2 && "0x" == hexKey[:2] {
		hexKey = hexKey[2:]
	}
	privateKey, err := crypto.HexToECDSA(hexKey)
	if nil != err {
		return nil, err
	}
	return &Signer{
		PrivateKey: privateKey,
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PublicKey:  crypto.FromECDSAPub(&privateKey.PublicKey)[1:],
	}, nil
}

// envelope for the signer's next call
func (client *Client) envelope(signer *Signer, value string) (access.Envelope, error) {
	nonce, err := client.GetNonce(signer.Address)
	if nil != err {
		return access.Envelope{}, err
	}
	return access.Envelope{
		Caller: signer.Address,
		Nonce:  nonce,
		Value:  value,
	}, nil
}

// RegisterDevice - add a device to the signer's list
func (client *Client) RegisterDevice(signer *Signer, deviceId []byte, dailyPrice string) (*access.RegisterDeviceReply, error) {
	e, err := client.envelope(signer, "")
	if nil != err {
		return nil, err
	}
	arguments := access.RegisterDeviceArguments{
		Envelope:   e,
		DeviceId:   deviceId,
		DailyPrice: dailyPrice,
	}
	if err := access.Sign(access.MethodRegisterDevice, &arguments, signer.PrivateKey); nil != err {
		return nil, err
	}

	var reply access.RegisterDeviceReply
	if err := client.call("Register", access.MethodRegisterDevice, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RequestData - the parameters for a data request
type RequestData struct {
	Owner    account.Address
	DeviceId []byte
	FromTime uint64
	ToTime   uint64
	Api      string
	Value    string
}

// RequestData - ask for device data paying value into escrow
func (client *Client) RequestData(signer *Signer, requestConfig *RequestData) (*access.RequestDataReply, error) {
	e, err := client.envelope(signer, requestConfig.Value)
	if nil != err {
		return nil, err
	}
	arguments := access.RequestDataArguments{
		Envelope:  e,
		Owner:     requestConfig.Owner,
		DeviceId:  requestConfig.DeviceId,
		PublicKey: signer.PublicKey,
		FromTime:  requestConfig.FromTime,
		ToTime:    requestConfig.ToTime,
		Api:       requestConfig.Api,
	}
	if err := access.Sign(access.MethodRequestData, &arguments, signer.PrivateKey); nil != err {
		return nil, err
	}

	var reply access.RequestDataReply
	if err := client.call("Request", access.MethodRequestData, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ConfirmSentData - owner records delivery of a request
func (client *Client) ConfirmSentData(signer *Signer, requester account.Address, txId common.Hash, dataHash []byte) (*access.ConfirmReply, error) {
	e, err := client.envelope(signer, "")
	if nil != err {
		return nil, err
	}
	arguments := access.ConfirmSentDataArguments{
		Envelope:  e,
		Requester: requester,
		TxId:      txId,
		DataHash:  dataHash,
	}
	if err := access.Sign(access.MethodConfirmSentData, &arguments, signer.PrivateKey); nil != err {
		return nil, err
	}

	var reply access.ConfirmReply
	if err := client.call("Sent", access.MethodConfirmSentData, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ConfirmReceivedData - requester releases payment to the owner
func (client *Client) ConfirmReceivedData(signer *Signer, owner account.Address, txId common.Hash) (*access.ConfirmReply, error) {
	e, err := client.envelope(signer, "")
	if nil != err {
		return nil, err
	}
	arguments := access.ConfirmReceivedDataArguments{
		Envelope: e,
		Owner:    owner,
		TxId:     txId,
	}
	if err := access.Sign(access.MethodConfirmReceivedData, &arguments, signer.PrivateKey); nil != err {
		return nil, err
	}

	var reply access.ConfirmReply
	if err := client.call("Received", access.MethodConfirmReceivedData, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Reclaim - refund of an expired request
func (client *Client) Reclaim(signer *Signer, txId common.Hash) (*access.ConfirmReply, error) {
	e, err := client.envelope(signer, "")
	if nil != err {
		return nil, err
	}
	arguments := access.ReclaimArguments{
		Envelope: e,
		TxId:     txId,
	}
	if err := access.Sign(access.MethodReclaim, &arguments, signer.PrivateKey); nil != err {
		return nil, err
	}

	var reply access.ConfirmReply
	if err := client.call("Reclaim", access.MethodReclaim, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
