// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger_JSONWhenNotTerminal(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, slog.LevelDebug, false)
	logger.Debug("catalog request", "method", "GET")

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %q", buffer.String())
	}
	if record["msg"] != "catalog request" || record["method"] != "GET" {
		t.Errorf("record = %v", record)
	}
}

func TestNewLogger_TextOnTerminal(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, slog.LevelInfo, true)
	logger.Info("resolved", "path", "/genomes")
	if !strings.Contains(buffer.String(), "msg=resolved path=/genomes") {
		t.Errorf("text output = %q", buffer.String())
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, slog.LevelWarn, false)
	logger.Debug("hidden")
	logger.Info("hidden")
	if buffer.Len() != 0 {
		t.Errorf("records below Warn were written: %q", buffer.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buffer.String(), "shown") {
		t.Errorf("Warn record missing: %q", buffer.String())
	}
}
