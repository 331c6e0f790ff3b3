// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/synthd/capability"
	"github.com/bitmark-inc/synthd/chain"
	"github.com/bitmark-inc/synthd/fault"
	"github.com/bitmark-inc/synthd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "synthd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// DatabaseType - where the store lives
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	// capability name -> RFC 3339 activation time, local chain only
	Capabilities map[string]string `gluamapper:"capabilities" json:"capabilities"`

	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Synth,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // chain-dependent default assigned below
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// the database name follows the chain unless explicitly set
	if "" == options.Database.Name {
		options.Database.Name = options.Chain
	}

	// capability overrides are a development facility
	if chain.Local != options.Chain && 0 != len(options.Capabilities) {
		return nil, fmt.Errorf("chain: %q cannot override capabilities", options.Chain)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	return options, nil
}

// DatabasePath - the store location handed to storage.Initialise
func (options *Configuration) DatabasePath() string {
	return filepath.Join(options.Database.Directory, options.Database.Name)
}

// Gate - the capability gate for the configured chain
//
// on a local chain the configured overrides replace the scheduled
// activation times, so a development net can sit before or after any
// epoch
func (options *Configuration) Gate() (*capability.Gate, error) {
	gate, err := capability.NewGate(options.Chain)
	if nil != err {
		return nil, err
	}
	if 0 == len(options.Capabilities) {
		return gate, nil
	}
	if chain.Local != options.Chain {
		return nil, fault.InvalidChain
	}

	schedule := make(map[capability.Capability]time.Time)
	for c := capability.First; c <= capability.Last; c += 1 {
		if at, ok := gate.ActivationTime(c); ok {
			schedule[c] = at
		}
	}

	for name, value := range options.Capabilities {
		var c capability.Capability
		if err := c.UnmarshalText([]byte(name)); nil != err {
			return nil, err
		}
		at, err := time.Parse(time.RFC3339, value)
		if nil != err {
			return nil, err
		}
		schedule[c] = at.UTC()
	}

	return capability.NewGateWithSchedule(schedule)
}
