// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/accessd/fault"
	"github.com/bitmark-inc/accessd/fixtures"
	"github.com/bitmark-inc/accessd/rpc/certificate"
	"github.com/bitmark-inc/logger"
)

func TestMakeAndLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir := t.TempDir()
	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err := certificate.MakeSelfSigned("test", cer, key, nil)
	assert.Nil(t, err, "wrong MakeSelfSigned")

	err = certificate.MakeSelfSigned("test", cer, key, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "overwrote certificate")

	tlsConfig, fingerprint, err := certificate.Load(logger.New(fixtures.LogCategory), "test", cer, key)
	assert.Nil(t, err, "wrong Load")

	cerPEM, _ := os.ReadFile(cer)
	keyPEM, _ := os.ReadFile(key)
	pair, _ := tls.X509KeyPair(cerPEM, keyPEM)

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "junk", "junk")
	assert.NotNil(t, err, "accepted junk")
}
