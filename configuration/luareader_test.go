// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strata-network/stratad/configuration"
)

type testInner struct {
	Name  string `gluamapper:"name"`
	Limit int    `gluamapper:"limit"`
}

type testConfig struct {
	Chain   string    `gluamapper:"chain"`
	PidFile string    `gluamapper:"pidfile"`
	Inner   testInner `gluamapper:"inner"`
}

const testScript = `
local M = {
    chain = "testing",
    pidfile = arg[0] .. ".pid",
    inner = {
        name = "pools",
        limit = 25,
    },
}
return M
`

func TestParseConfigurationFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "stratad.conf")
	err := os.WriteFile(fileName, []byte(testScript), 0600)
	assert.NoError(t, err, "cannot write test configuration")

	config := &testConfig{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.NoError(t, err, "parse failed")

	assert.Equal(t, "testing", config.Chain, "wrong chain")
	assert.Equal(t, fileName+".pid", config.PidFile, "arg[0] not visible to the script")
	assert.Equal(t, "pools", config.Inner.Name, "nested table not mapped")
	assert.Equal(t, 25, config.Inner.Limit, "nested number not mapped")
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfig{}
	err := configuration.ParseConfigurationFile("/nonexistent/stratad.conf", config)
	assert.Error(t, err, "missing file must fail")
}
