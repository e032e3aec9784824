// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/ModChain/sec1"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCurve      = "P-256"
	defaultDebugLevel = "info"
)

// config defines the configuration options for sec1util.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Curve      string `short:"c" long:"curve" description:"Curve the points belong to {P-224, P-256, P-384, P-521, secp256k1}"`
	Compressed bool   `short:"z" long:"compressed" description:"Re-encode valid points in compressed form instead of uncompressed"`
	PubKey     bool   `short:"k" long:"pubkey" description:"Reject points that are not usable as public keys, such as the point at infinity"`
	Base58     bool   `short:"b" long:"base58" description:"Read and write points as base58 instead of hex"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`

	curve    *sec1.CurveParams
	logLevel btclog.Level
}

// errNoPoints is returned by loadConfig when no points are given.
var errNoPoints = errors.New("no encoded points specified")

// loadConfig initializes and parses the config using command line options.
// The remaining positional arguments are the encoded points to process.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Curve:      defaultCurve,
		DebugLevel: defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] <encoded point>..."
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.curve, err = sec1.CurveByName(cfg.Curve)
	if err != nil {
		return nil, nil, err
	}

	level, ok := btclog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return nil, nil, fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	cfg.logLevel = level

	if len(remaining) == 0 {
		return nil, nil, errNoPoints
	}
	return &cfg, remaining, nil
}
