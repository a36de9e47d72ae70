// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runseq

import (
	"fmt"
)

// Result represents the outcome of running a single step.
type Result struct {
	Label    string // Label of the step
	ExitCode int    // Exit code of the step
	Error    error  // Error, if any
}

// Failed reports whether the result stops the sequence.
func (r *Result) Failed() bool {
	return r.Error != nil || r.ExitCode != 0
}

// CommandFailedError is returned when a command exits with a non-zero
// status or cannot be started. It is never recovered; the caller surfaces
// it as the process's failure exit code.
type CommandFailedError struct {
	Command  string // Space-joined command line of the failed step.
	ExitCode int    // Exit status of the child, or -1 if it never started.
	Err      error  // Underlying error when the process could not be started.
}

// Error implements the error interface for CommandFailedError.
func (e *CommandFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
	}

	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error, if any.
func (e *CommandFailedError) Unwrap() error {
	return e.Err
}
