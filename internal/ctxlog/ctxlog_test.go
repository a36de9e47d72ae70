// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := New(context.Background(), custom)
	assert.Same(t, custom, Logger(ctx))

	ctx = New(context.Background(), nil)
	assert.Same(t, DefaultLogger, Logger(ctx), "nil logger should fall back to DefaultLogger")
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() context.Context
		expectDefault bool
	}{
		{
			name: "context with logger",
			setupContext: func() context.Context {
				return New(context.Background(), slog.New(slog.NewTextHandler(os.Stderr, nil)))
			},
			expectDefault: false,
		},
		{
			name: "context without logger",
			setupContext: func() context.Context {
				return context.Background()
			},
			expectDefault: true,
		},
		{
			name: "context with wrong type value",
			setupContext: func() context.Context {
				return context.WithValue(context.Background(), loggerKey{}, "not a logger")
			},
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.setupContext())
			assert.NotNil(t, logger)

			if tt.expectDefault {
				assert.Same(t, DefaultLogger, logger)
			} else {
				assert.NotSame(t, DefaultLogger, logger)
			}
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx := New(context.Background(), logger)

	tests := []struct {
		name     string
		logFunc  func(context.Context, string, ...any)
		message  string
		expected string
	}{
		{name: "Info logging", logFunc: Info, message: "test info message", expected: "INFO"},
		{name: "Debug logging", logFunc: Debug, message: "test debug message", expected: "DEBUG"},
		{name: "Warn logging", logFunc: Warn, message: "test warning message", expected: "WARN"},
		{name: "Error logging", logFunc: Error, message: "test error message", expected: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, tt.message, "key", "value")

			output := buf.String()
			assert.True(t, strings.Contains(output, tt.expected), "expected output to contain %q, got: %s", tt.expected, output)
			assert.True(t, strings.Contains(output, tt.message), "expected output to contain %q, got: %s", tt.message, output)
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name          string
		envValue      string
		expectedLevel slog.Level
	}{
		{name: "DEBUG level", envValue: "DEBUG", expectedLevel: slog.LevelDebug},
		{name: "INFO level", envValue: "INFO", expectedLevel: slog.LevelInfo},
		{name: "WARN level", envValue: "WARN", expectedLevel: slog.LevelWarn},
		{name: "ERROR level", envValue: "ERROR", expectedLevel: slog.LevelError},
		{name: "invalid level defaults to WARN", envValue: "INVALID", expectedLevel: slog.LevelWarn},
		{name: "empty level defaults to WARN", envValue: "", expectedLevel: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(logLevelEnvVar, tt.envValue)
			assert.Equal(t, tt.expectedLevel, logLevelFromEnv())
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	assert.NotNil(t, DefaultLogger)

	originalLevel := LevelVar.Level()
	defer LevelVar.Set(originalLevel)

	LevelVar.Set(slog.LevelDebug)

	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelInfo))
}

func TestLoggingWithDefaultLogger(t *testing.T) {
	// Must not panic without a logger in the context.
	ctx := context.Background()

	Info(ctx, "test info")
	Debug(ctx, "test debug")
	Warn(ctx, "test warn")
	Error(ctx, "test error")
}
