// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the check command-line application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/check"
	"github.com/matt-FFFFFF/check/cmd"
	"github.com/matt-FFFFFF/check/internal/ctxlog"
	"github.com/matt-FFFFFF/check/internal/runseq"
	"github.com/matt-FFFFFF/check/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", check.Version, check.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args)
	if err != nil {
		ctxlog.Logger(ctx).Error("checks failed", "error", err)
		os.Exit(exitCode(err))
	}

	os.Exit(0)
}

// exitCode propagates the failing command's exit status when there is one,
// otherwise a generic failure code.
func exitCode(err error) int {
	var cmdErr *runseq.CommandFailedError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}

	return 1
}
