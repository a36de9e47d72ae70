// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/check/internal/ctxlog"
	"github.com/matt-FFFFFF/check/internal/runseq"
	"github.com/urfave/cli/v3"
)

// checks are the steps run on every invocation, in order: the formatter in
// check mode, the linter with warnings promoted to errors, and the test
// suite. The list is fixed; there are no flags to change it.
var checks = []runseq.Runnable{
	&runseq.OSCommand{
		Label: "format",
		Path:  "cargo",
		Args:  []string{"fmt", "--", "--check"},
	},
	&runseq.OSCommand{
		Label: "lint",
		Path:  "cargo",
		Args:  []string{"clippy", "--", "-Dwarnings"},
	},
	&runseq.OSCommand{
		Label: "test",
		Path:  "cargo",
		Args:  []string{"test"},
	},
}

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "check",
	Description: `Check runs the project's development checks in a fixed order:
the formatter in check mode, the linter with warnings treated as errors,
and the test suite. Each command line is printed before it runs, the
invoked tools write straight to the terminal, and the first failure stops
the run with that command's exit status.`,
	Usage:     "check",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("running checks", "count", len(checks))

	seq := &runseq.Sequence{
		Label: "checks",
		Echo:  cmd.Writer,
		Steps: checks,
	}

	return seq.Run(ctx)
}
