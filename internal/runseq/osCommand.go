// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runseq

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/check/internal/ctxlog"
)

var _ Runnable = (*OSCommand)(nil)

// ErrCouldNotStartProcess is returned when the process could not be started.
var ErrCouldNotStartProcess = errors.New("could not start process")

// OSCommand represents a single external command run as a child process.
// The child inherits the parent's standard streams, so the invoked tool's
// own output is visible directly rather than captured.
type OSCommand struct {
	Path  string            // The program to run. Resolved on PATH when not an explicit path.
	Args  []string          // Arguments to the command, do not include the program name itself.
	Cwd   string            // Working directory for the command, empty means inherit.
	Env   map[string]string // Additional environment variables, appended to os.Environ().
	Label string            // Optional label for the command.
}

// CommandLine returns the space-joined tokens of the command as given,
// without PATH resolution.
func (c *OSCommand) CommandLine() string {
	return strings.Join(slices.Concat([]string{c.Path}, c.Args), " ")
}

// GetLabel returns the label of the command, defaulting to the program name.
func (c *OSCommand) GetLabel() string {
	if c.Label == "" {
		return filepath.Base(c.Path)
	}

	return c.Label
}

// Run implements the Runnable interface for OSCommand.
// It blocks until the child process terminates.
func (c *OSCommand) Run(ctx context.Context) *Result {
	logger := ctxlog.Logger(ctx).
		With("runnableType", "OSCommand").
		With("label", c.GetLabel())

	logger.Debug("command info", "path", c.Path, "cwd", c.Cwd, "args", c.Args)

	res := &Result{Label: c.GetLabel()}

	path := c.Path
	if !strings.ContainsRune(path, os.PathSeparator) {
		resolved, err := exec.LookPath(path)
		if err != nil {
			res.Error = errors.Join(ErrCouldNotStartProcess, err)
			res.ExitCode = -1

			return res
		}

		path = resolved
	}

	env := os.Environ()

	for k, v := range c.Env {
		logger.Debug("adding environment variable", "key", k, "value", v)
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	execName := filepath.Base(path)
	args := slices.Concat([]string{execName}, c.Args)

	logger.Debug("starting process")

	ps, err := os.StartProcess(path, args, &os.ProcAttr{
		Dir:   c.Cwd,
		Env:   env,
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	})
	if err != nil {
		res.Error = errors.Join(ErrCouldNotStartProcess, err)
		res.ExitCode = -1

		return res
	}

	logger.Debug("process started", "pid", ps.Pid)

	state, err := ps.Wait()
	if err != nil {
		res.Error = err
		res.ExitCode = -1

		return res
	}

	res.ExitCode = state.ExitCode()

	logger.Debug("process finished", "exitCode", res.ExitCode)

	return res
}
