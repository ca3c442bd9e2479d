// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Isolate sets XDG_CONFIG_HOME to a fresh temporary directory and
// clears CATALOG_CONFIG, CATALOG_SERVER, CATALOG_SESSION_FILE, and
// NO_COLOR for the duration of the test. It returns the directory.
func Isolate(t *testing.T) string {
	t.Helper()
	directory := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", directory)
	for _, name := range []string{"CATALOG_CONFIG", "CATALOG_SERVER", "CATALOG_SESSION_FILE", "NO_COLOR"} {
		t.Setenv(name, "")
	}
	return directory
}

// WriteFile writes content to path, creating parent directories, and
// returns path.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
