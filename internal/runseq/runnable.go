// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runseq

import (
	"context"
)

// Runnable is a single step in a check sequence.
type Runnable interface {
	// Run executes the step and blocks until it has finished.
	Run(ctx context.Context) *Result
	// CommandLine returns the textual rendering of the step. The sequence
	// prints it before the step runs.
	CommandLine() string
}
