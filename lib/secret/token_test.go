// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewToken(t *testing.T) {
	source := []byte("  abc.def  \n")
	token, err := NewToken(source)
	if err != nil {
		t.Fatalf("NewToken() error: %v", err)
	}
	defer token.Close()

	header, err := token.Authorization()
	if err != nil {
		t.Fatalf("Authorization() error: %v", err)
	}
	if header != "Bearer abc.def" {
		t.Errorf("Authorization() = %q, want %q", header, "Bearer abc.def")
	}
	if token.Len() != len("abc.def") {
		t.Errorf("Len() = %d, want %d", token.Len(), len("abc.def"))
	}
	for index, b := range source {
		if b != 0 {
			t.Fatalf("source byte %d = %q, want zeroed", index, b)
		}
	}
}

func TestNewToken_Empty(t *testing.T) {
	for _, value := range []string{"", "   ", "\n\t"} {
		if _, err := NewTokenFromString(value); err == nil {
			t.Errorf("NewTokenFromString(%q) succeeded, want error", value)
		}
	}
}

func TestToken_Close(t *testing.T) {
	token, err := NewTokenFromString("secret-value")
	if err != nil {
		t.Fatalf("NewTokenFromString() error: %v", err)
	}
	if err := token.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := token.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if _, err := token.Authorization(); !errors.Is(err, ErrClosed) {
		t.Errorf("Authorization() after Close error = %v, want ErrClosed", err)
	}
	if _, err := token.Reveal(); !errors.Is(err, ErrClosed) {
		t.Errorf("Reveal() after Close error = %v, want ErrClosed", err)
	}
}

func TestReadToken_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("file-token\n"), 0600); err != nil {
		t.Fatal(err)
	}

	token, err := ReadToken(path)
	if err != nil {
		t.Fatalf("ReadToken() error: %v", err)
	}
	defer token.Close()

	value, err := token.Reveal()
	if err != nil {
		t.Fatalf("Reveal() error: %v", err)
	}
	if value != "file-token" {
		t.Errorf("Reveal() = %q, want %q", value, "file-token")
	}
}

func TestReadToken_Errors(t *testing.T) {
	directory := t.TempDir()

	if _, err := ReadToken(filepath.Join(directory, "missing")); err == nil {
		t.Error("ReadToken(missing) succeeded, want error")
	}

	empty := filepath.Join(directory, "empty")
	if err := os.WriteFile(empty, []byte("  \n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadToken(empty); err == nil {
		t.Error("ReadToken(empty) succeeded, want error")
	}

	large := filepath.Join(directory, "large")
	if err := os.WriteFile(large, []byte(strings.Repeat("x", maxTokenSize+1)), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadToken(large); err == nil {
		t.Error("ReadToken(large) succeeded, want error")
	}
}

func TestReadFirstLine(t *testing.T) {
	token, err := readFirstLine(strings.NewReader("first\nsecond\n"))
	if err != nil {
		t.Fatalf("readFirstLine() error: %v", err)
	}
	defer token.Close()

	value, _ := token.Reveal()
	if value != "first" {
		t.Errorf("readFirstLine() = %q, want %q", value, "first")
	}

	if _, err := readFirstLine(strings.NewReader("")); err == nil {
		t.Error("readFirstLine(empty) succeeded, want error")
	}
}
