// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/synthd/capability"
	"github.com/bitmark-inc/synthd/configuration"
)

const testDirectory = "testing-configuration"

func writeConfiguration(t *testing.T, content string) string {
	_ = os.RemoveAll(testDirectory)
	if err := os.Mkdir(testDirectory, 0700); nil != err {
		t.Fatalf("mkdir error: %s", err)
	}
	fileName := filepath.Join(testDirectory, "synthd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func removeConfiguration() {
	_ = os.RemoveAll(testDirectory)
}

func TestConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "testing"
return M
`)
	defer removeConfiguration()

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, "testing", options.Chain, "wrong chain")
	assert.Equal(t, "testing", options.Database.Name, "wrong database name")
	assert.True(t, filepath.IsAbs(options.Database.Directory), "database directory not absolute")
	assert.True(t, filepath.IsAbs(options.Logging.Directory), "log directory not absolute")
	assert.Equal(t, "synthd.log", options.Logging.File, "wrong log file")

	expected := filepath.Join(options.Database.Directory, "testing")
	assert.Equal(t, expected, options.DatabasePath(), "wrong database path")

	gate, err := options.Gate()
	assert.Nil(t, err, "gate error")
	at := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, gate.IsActive(capability.FeedGovernance, at), "testing schedule not used")
}

func TestConfigurationOverrides(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "local"
M.database = {
    directory = "db",
    name = "devnet",
}
M.capabilities = {
    ["black-swan-response"] = "2030-01-01T00:00:00Z",
}
M.logging = {
    size = 2097152,
    count = 5,
}
return M
`)
	defer removeConfiguration()

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, "devnet", options.Database.Name, "wrong database name")
	assert.Equal(t, 2097152, options.Logging.Size, "wrong log size")
	assert.Equal(t, 5, options.Logging.Count, "wrong log count")

	gate, err := options.Gate()
	if nil != err {
		t.Fatalf("gate error: %s", err)
	}

	// untouched capability keeps the local from-genesis schedule
	early := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, gate.IsActive(capability.FeedGovernance, early), "default override lost")

	// overridden capability moves to the configured time
	assert.False(t, gate.IsActive(capability.BlackSwanResponse, early), "override not applied")
	assert.False(t, gate.IsActive(capability.BlackSwanResponse,
		time.Date(2029, time.December, 31, 0, 0, 0, 0, time.UTC)), "override not applied")
	assert.True(t, gate.IsActive(capability.BlackSwanResponse,
		time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)), "override time wrong")
}

func TestConfigurationRejections(t *testing.T) {
	// unknown chain
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "mainnet"
return M
`)
	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "unknown chain accepted")
	removeConfiguration()

	// overrides are local chain only
	fileName = writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "testing"
M.capabilities = {
    ["black-swan-response"] = "2030-01-01T00:00:00Z",
}
return M
`)
	defer removeConfiguration()
	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "override on public chain accepted")
}

func TestConfigurationBadCapability(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "local"
M.capabilities = {
    ["no-such-capability"] = "2030-01-01T00:00:00Z",
}
return M
`)
	defer removeConfiguration()

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}
	_, err = options.Gate()
	assert.NotNil(t, err, "unknown capability accepted")
}
