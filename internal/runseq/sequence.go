// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runseq

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/check/internal/ctxlog"
)

// Sequence is an ordered list of steps run serially with fail-fast
// semantics. There is no rollback and no partial continuation: the first
// failing step ends the run.
type Sequence struct {
	Label string     // Optional label for the sequence.
	Echo  io.Writer  // Where command lines are printed before each step. Defaults to os.Stdout.
	Steps []Runnable // The steps to run, in order.
}

// Run executes the steps in order. Each step's command line is written to
// the Echo writer strictly before the step starts. The first step that
// fails is reported as a *CommandFailedError and the remaining steps are
// never started. An empty sequence succeeds immediately.
//
// Cancellation is only observed between steps; a step that is already
// running always runs to completion.
func (s *Sequence) Run(ctx context.Context) error {
	logger := ctxlog.Logger(ctx).
		With("runnableType", "Sequence").
		With("label", s.Label)

	echo := s.Echo
	if echo == nil {
		echo = os.Stdout
	}

	for _, step := range s.Steps {
		select {
		case <-ctx.Done():
			logger.Debug("context done, stopping sequence")

			return ctx.Err()
		default:
		}

		fmt.Fprintln(echo, step.CommandLine())

		logger.Debug("running step", "command", step.CommandLine())

		res := step.Run(ctx)
		if res.Failed() {
			logger.Debug("step failed", "exitCode", res.ExitCode, "error", res.Error)

			return &CommandFailedError{
				Command:  step.CommandLine(),
				ExitCode: res.ExitCode,
				Err:      res.Error,
			}
		}
	}

	return nil
}
