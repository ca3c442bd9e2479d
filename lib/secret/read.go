// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// maxTokenSize bounds how much is read from a token source. Bearer
// tokens are a few kilobytes at most.
const maxTokenSize = 64 * 1024

// ReadToken reads a token from a file, or from stdin when path is "-".
// Only the first line of stdin is used.
func ReadToken(path string) (*Token, error) {
	if path == "-" {
		return readFirstLine(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening token file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxTokenSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading token file %s: %w", path, err)
	}
	if len(data) > maxTokenSize {
		zero(data)
		return nil, fmt.Errorf("token file %s exceeds %d bytes", path, maxTokenSize)
	}
	return NewToken(data)
}

func readFirstLine(reader io.Reader) (*Token, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return nil, fmt.Errorf("stdin is empty")
	}
	return NewToken(scanner.Bytes())
}

// PromptToken writes prompt to stderr and reads a token from the
// terminal without echo. Fails when stdin is not a terminal.
func PromptToken(prompt string) (*Token, error) {
	descriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(descriptor) {
		return nil, fmt.Errorf("stdin is not a terminal; use --token-file")
	}
	fmt.Fprint(os.Stderr, prompt)
	data, err := term.ReadPassword(descriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading token: %w", err)
	}
	return NewToken(data)
}
