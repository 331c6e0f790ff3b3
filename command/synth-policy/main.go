// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/synthd/assetrecord"
	"github.com/bitmark-inc/synthd/authorizer"
	"github.com/bitmark-inc/synthd/bsrm"
	"github.com/bitmark-inc/synthd/configuration"
	"github.com/bitmark-inc/synthd/position"
	"github.com/bitmark-inc/synthd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["config-file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] --config-file=FILE command [args]\n"+
			"       commands:\n"+
			"         show SYMBOL             display a stored asset\n"+
			"         debt SYMBOL             display outstanding exposure\n"+
			"         set-method SYMBOL M     dry run of a method change (M = method name or none)\n"+
			"         lock SYMBOL             dry run of revoking the method authority\n"+
			"         unlock SYMBOL           dry run of restoring the method authority", program)
	}

	verbose := len(options["verbose"]) > 0

	cfg, err := configuration.GetConfiguration(options["config-file"][0])
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	if err := logger.Initialise(cfg.Logging); nil != err {
		exitwithstatus.Message("%s: logger error: %s", program, err)
	}
	defer logger.Finalise()

	if err := storage.Initialise(cfg.DatabasePath(), storage.ReadOnly); nil != err {
		exitwithstatus.Message("%s: storage error: %s", program, err)
	}
	defer storage.Finalise()

	if err := position.Initialise(); nil != err {
		exitwithstatus.Message("%s: position error: %s", program, err)
	}
	defer position.Finalise()

	gate, err := cfg.Gate()
	if nil != err {
		exitwithstatus.Message("%s: gate error: %s", program, err)
	}
	if err := authorizer.Initialise(gate, position.Ledger{}); nil != err {
		exitwithstatus.Message("%s: authorizer error: %s", program, err)
	}
	defer authorizer.Finalise()

	command := arguments[0]
	arguments = arguments[1:]
	if 0 == len(arguments) {
		exitwithstatus.Message("%s: %s: missing asset symbol", program, command)
	}
	symbol := strings.ToUpper(arguments[0])

	if verbose {
		fmt.Printf("chain: %s  database: %s\n", cfg.Chain, cfg.DatabasePath())
	}

	asset := readAsset(program, symbol)
	now := time.Now().UTC()

	switch command {

	case "show":
		printJSON(program, asset)

	case "debt":
		assetId := asset.AssetId()
		exposed := position.Ledger{}.HasOpenExposure(assetId)
		fmt.Printf("asset: %s\n", symbol)
		fmt.Printf("total debt: %d\n", position.TotalDebt(assetId))
		fmt.Printf("open exposure: %t\n", exposed)
		fmt.Printf("method: %s\n", asset.Method())
		fmt.Printf("owner may update method: %t\n", asset.CanOwnerUpdateBsrm())

	case "set-method":
		if len(arguments) < 2 {
			exitwithstatus.Message("%s: set-method: missing method", program)
		}
		if nil == asset.Synthetic {
			exitwithstatus.Message("%s: %s is not a synthetic asset", program, symbol)
		}
		op := &assetrecord.UpdateSyntheticAsset{
			AssetId: asset.AssetId(),
			Options: *asset.Synthetic,
		}
		if "none" == arguments[1] {
			op.Options.ResponseMethod = nil
		} else {
			method := bsrm.GlobalSettlement
			if err := method.UnmarshalText([]byte(arguments[1])); nil != err {
				exitwithstatus.Message("%s: method %q error: %s", program, arguments[1], err)
			}
			op.Options.ResponseMethod = &method
		}
		dryRun(program, asset, op, now)

	case "lock", "unlock":
		op := &assetrecord.UpdateAsset{
			AssetId: asset.AssetId(),
			Options: asset.Options,
		}
		if "lock" == command {
			op.Options.Permissions |= assetrecord.DisableBsrmUpdate
		} else {
			op.Options.Permissions &^= assetrecord.DisableBsrmUpdate
		}
		dryRun(program, asset, op, now)

	default:
		exitwithstatus.Message("%s: unknown command: %q", program, command)
	}
}

// fetch and decode one asset record
func readAsset(program string, symbol string) *assetrecord.Asset {
	if err := assetrecord.ValidateSymbol(symbol); nil != err {
		exitwithstatus.Message("%s: symbol %q error: %s", program, symbol, err)
	}

	assetId := assetrecord.NewAssetId(symbol)
	packed := storage.Pool.Assets.Get(assetId[:])
	if nil == packed {
		exitwithstatus.Message("%s: no asset stored for symbol: %q", program, symbol)
	}

	asset, _, err := assetrecord.Packed(packed).Unpack()
	if nil != err {
		exitwithstatus.Message("%s: corrupt asset record: %s", program, err)
	}
	return asset
}

// evaluate an operation without committing anything
func dryRun(program string, current *assetrecord.Asset, operation assetrecord.Operation, now time.Time) {
	result, err := authorizer.Authorize(operation, current, now)
	if nil != err {
		fmt.Printf("rejected: %s\n", err)
		exitwithstatus.Exit(1)
	}
	fmt.Printf("accepted; resulting state:\n")
	printJSON(program, result)
}

func printJSON(program string, asset *assetrecord.Asset) {
	buffer, err := json.MarshalIndent(asset, "", "  ")
	if nil != err {
		exitwithstatus.Message("%s: json error: %s", program, err)
	}
	fmt.Printf("%s\n", buffer)
}
