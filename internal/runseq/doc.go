// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runseq runs an ordered list of external commands with fail-fast
// semantics. Each step's command line is printed before the step runs, the
// child process inherits the parent's standard streams, and the first step
// that exits non-zero (or fails to start) stops the whole sequence.
package runseq
