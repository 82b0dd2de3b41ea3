// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "info", input: "info", expected: slog.LevelInfo},
		{name: "warn", input: "warn", expected: slog.LevelWarn},
		{name: "warning alias", input: "WARNING", expected: slog.LevelWarn},
		{name: "error", input: "error", expected: slog.LevelError},
		{name: "mixed case", input: "Debug", expected: slog.LevelDebug},
		{name: "padded", input: "  info  ", expected: slog.LevelInfo},
		{name: "empty defaults to info", input: "", expected: slog.LevelInfo},
		{name: "unknown defaults to info", input: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("test-module", "v0.0.1", "debug")
	if logger == nil {
		t.Fatal("expected logger instance, got nil")
	}

	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected debug level to be enabled")
	}
}

func TestNewLogLogger(t *testing.T) {
	logger := NewLogLogger(slog.LevelInfo)
	if logger == nil {
		t.Fatal("expected *log.Logger instance, got nil")
	}
}
