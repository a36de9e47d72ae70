// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runseq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultFailed(t *testing.T) {
	tests := []struct {
		name string
		res  *Result
		want bool
	}{
		{
			name: "zero exit code and no error",
			res:  &Result{ExitCode: 0},
			want: false,
		},
		{
			name: "non-zero exit code",
			res:  &Result{ExitCode: 101},
			want: true,
		},
		{
			name: "error with zero exit code",
			res:  &Result{Error: errors.New("boom")},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.Failed())
		})
	}
}

func TestCommandFailedError(t *testing.T) {
	err := &CommandFailedError{Command: "cargo test", ExitCode: 101}
	assert.Equal(t, `command "cargo test" exited with status 101`, err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestCommandFailedError_Unwrap(t *testing.T) {
	start := errors.Join(ErrCouldNotStartProcess, errors.New("no such file"))
	err := &CommandFailedError{Command: "cargo test", ExitCode: -1, Err: start}

	assert.ErrorIs(t, err, ErrCouldNotStartProcess)
	assert.Contains(t, err.Error(), "cargo test")
}
