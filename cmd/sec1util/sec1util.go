// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// The sec1util command decodes and validates SEC1 encoded elliptic curve
// points and prints their coordinates along with a canonical re-encoding.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ModChain/sec1"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	backend := btclog.NewBackend(os.Stderr)
	logger := backend.Logger("SEC1")
	logger.SetLevel(cfg.logLevel)
	sec1.UseLogger(logger)

	if err := run(cfg, args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run decodes each encoded point and writes a report for it to w.  An error
// is returned when any of the points was rejected.
func run(cfg *config, args []string, w io.Writer) error {
	var rejected int
	for _, arg := range args {
		if err := describe(cfg, arg, w); err != nil {
			fmt.Fprintf(w, "%s\n  rejected: %v", arg, err)
			var kind sec1.ErrorKind
			if errors.As(err, &kind) {
				fmt.Fprintf(w, " (%s)", kind)
			}
			fmt.Fprintln(w)
			rejected++
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d points rejected", rejected, len(args))
	}
	return nil
}

// describe decodes a single point and writes its report to w.
func describe(cfg *config, arg string, w io.Writer) error {
	raw, err := decodeInput(cfg, arg)
	if err != nil {
		return err
	}

	point, err := cfg.curve.DecodeSEC1(raw)
	if err != nil {
		return err
	}

	var pubKey *sec1.PublicKey
	if cfg.PubKey {
		pubKey, err = sec1.ToPublicKey(point)
		if err != nil {
			return err
		}
	}

	encoded := point.Encode(cfg.Compressed)
	fmt.Fprintf(w, "%s\n", arg)
	fmt.Fprintf(w, "  curve:       %s\n", cfg.curve)
	if point.IsInfinity() {
		fmt.Fprintf(w, "  point:       infinity\n")
	} else {
		fmt.Fprintf(w, "  x:           %v\n", point.X())
		fmt.Fprintf(w, "  y:           %v\n", point.Y())
	}
	fmt.Fprintf(w, "  %-12s %s\n", encoded.Form().String()+":",
		encodeOutput(cfg, encoded.Bytes()))
	if pubKey != nil {
		fp := pubKey.Fingerprint()
		fmt.Fprintf(w, "  fingerprint: %x\n", fp[:])
	}
	return nil
}

// decodeInput converts a command line argument to bytes according to the
// configured input encoding.
func decodeInput(cfg *config, arg string) ([]byte, error) {
	arg = strings.TrimSpace(arg)
	if cfg.Base58 {
		b := base58.Decode(arg)
		if len(b) == 0 {
			return nil, fmt.Errorf("invalid base58 input %q", arg)
		}
		return b, nil
	}
	b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input %q: %w", arg, err)
	}
	return b, nil
}

// encodeOutput converts bytes to text according to the configured encoding.
func encodeOutput(cfg *config, b []byte) string {
	if cfg.Base58 {
		return base58.Encode(b)
	}
	return hex.EncodeToString(b)
}
