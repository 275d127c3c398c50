// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strata-network/stratad/fault"
	"github.com/strata-network/stratad/settlement"
)

const (
	goodKey     = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	goodAddress = "0x5aeda56215b167893e80b4fe645ba6d5bab767de"
)

func TestVerify(t *testing.T) {
	c := settlement.Configuration{
		SignerPrivateKey: goodKey,
		ContractAddress:  goodAddress,
	}
	assert.NoError(t, c.Verify(), "valid configuration rejected")

	// 0x prefix on the key is tolerated
	c.SignerPrivateKey = "0x" + goodKey
	assert.NoError(t, c.Verify(), "prefixed key rejected")
}

func TestVerifyBadKey(t *testing.T) {
	for i, key := range []string{
		"",
		"0x",
		"not hex at all",
		goodKey[:62],   // short
		goodKey + "ff", // long
	} {
		c := settlement.Configuration{
			SignerPrivateKey: key,
			ContractAddress:  goodAddress,
		}
		assert.Equal(t, fault.ErrMissingSignerKey, c.Verify(), "%d: key: %q", i, key)
	}
}

func TestVerifyBadAddress(t *testing.T) {
	for i, address := range []string{
		"",
		"0x0",
		strings.TrimPrefix(goodAddress, "0x"), // missing prefix
		goodAddress + "00",                    // long
	} {
		c := settlement.Configuration{
			SignerPrivateKey: goodKey,
			ContractAddress:  address,
		}
		assert.Equal(t, fault.ErrInvalidContractAddress, c.Verify(), "%d: address: %q", i, address)
	}
}

func TestEnvironmentDefaults(t *testing.T) {
	t.Setenv(settlement.SignerKeyEnvironment, goodKey)
	t.Setenv(settlement.ContractAddressEnvironment, goodAddress)

	c := settlement.WithEnvironmentDefaults(settlement.Configuration{})
	assert.Equal(t, goodKey, c.SignerPrivateKey, "signer key not defaulted")
	assert.Equal(t, goodAddress, c.ContractAddress, "contract address not defaulted")
	assert.NoError(t, c.Verify(), "defaulted configuration rejected")

	// explicit values win over the environment
	c = settlement.WithEnvironmentDefaults(settlement.Configuration{
		SignerPrivateKey: "explicit",
	})
	assert.Equal(t, "explicit", c.SignerPrivateKey, "environment overrode an explicit value")
}
