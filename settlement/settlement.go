// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settlement - settlement layer parameters
//
// the node settles against a contract on an external chain; this
// package only carries and checks the parameters for that contract,
// the actual RPC and signing live outside the node core
package settlement

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/strata-network/stratad/fault"
)

// environment fallbacks for values absent from the configuration file
const (
	SignerKeyEnvironment       = "SIGNER_PRIVATE_KEY"
	ContractAddressEnvironment = "SETTLEMENT_CONTRACT_ADDRESS"
)

// Configuration - settlement contract parameters
type Configuration struct {
	SignerPrivateKey string `gluamapper:"signer_private_key"`
	ContractAddress  string `gluamapper:"contract_address"`
}

// WithEnvironmentDefaults - fill unset fields from the environment
func WithEnvironmentDefaults(c Configuration) Configuration {
	if c.SignerPrivateKey == "" {
		c.SignerPrivateKey = os.Getenv(SignerKeyEnvironment)
	}
	if c.ContractAddress == "" {
		c.ContractAddress = os.Getenv(ContractAddressEnvironment)
	}
	return c
}

// Verify - reject unusable settlement parameters at startup
//
// the signer key must be 32 bytes of hex and the contract address the
// usual 0x-prefixed 20 bytes
func (c Configuration) Verify() error {
	key := strings.TrimPrefix(c.SignerPrivateKey, "0x")
	if key == "" {
		return fault.ErrMissingSignerKey
	}
	if b, err := hex.DecodeString(key); err != nil || len(b) != 32 {
		return fault.ErrMissingSignerKey
	}

	if !strings.HasPrefix(c.ContractAddress, "0x") {
		return fault.ErrInvalidContractAddress
	}
	if b, err := hex.DecodeString(c.ContractAddress[2:]); err != nil || len(b) != 20 {
		return fault.ErrInvalidContractAddress
	}
	return nil
}
