// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The fpcalc binary computes rounded fixed-point products and quotients from
// the command line, under either the recoverable or the host contract.
package main

import (
	"log"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd(stderrLogger).Execute(); err != nil {
		log.Fatal(err)
	}
}

func stderrLogger(lvl logging.Level) logging.Logger {
	return logging.NewLogger("", logging.NewWrappedCore(
		lvl, os.Stderr, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			TimeKey:    "time",
			LevelKey:   "level",
		}),
	))
}
