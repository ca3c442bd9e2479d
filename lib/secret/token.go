// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrClosed is returned when a closed token is read.
var ErrClosed = errors.New("secret: token is closed")

// Token is a bearer token in locked, non-dumpable memory. A Token must
// not be copied after creation; Close releases it.
type Token struct {
	mu     sync.Mutex
	region []byte
	length int
	closed bool
}

// NewToken copies value into protected memory and zeros value in place.
// Surrounding whitespace is dropped. Returns an error if nothing is
// left after trimming.
func NewToken(value []byte) (*Token, error) {
	defer zero(value)

	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("secret: token is empty")
	}

	pageSize := unix.Getpagesize()
	size := (len(trimmed) + pageSize - 1) / pageSize * pageSize
	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}
	if err := unix.Mlock(region); err != nil {
		unix.Munmap(region)
		return nil, fmt.Errorf("secret: mlock failed: %w", err)
	}
	// MADV_DONTDUMP is advisory; kernels without it still keep the
	// token out of swap.
	_ = unix.Madvise(region, unix.MADV_DONTDUMP)

	copy(region, trimmed)
	return &Token{region: region, length: len(trimmed)}, nil
}

// NewTokenFromString is NewToken for callers that already hold the
// token as a string, such as a decoded session file.
func NewTokenFromString(value string) (*Token, error) {
	return NewToken([]byte(value))
}

// Authorization returns the value of an HTTP Authorization header
// carrying the token.
func (t *Token) Authorization() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", ErrClosed
	}
	return "Bearer " + string(t.region[:t.length]), nil
}

// Reveal returns a heap copy of the token. Used only where the token
// must be persisted.
func (t *Token) Reveal() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", ErrClosed
	}
	return string(t.region[:t.length]), nil
}

// Len returns the token length in bytes.
func (t *Token) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.length
}

// Close zeros the token and releases its memory. Close is idempotent.
func (t *Token) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	zero(t.region)

	var firstError error
	if err := unix.Munlock(t.region); err != nil {
		firstError = fmt.Errorf("secret: munlock failed: %w", err)
	}
	if err := unix.Munmap(t.region); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munmap failed: %w", err)
	}
	t.region = nil
	t.length = 0
	return firstError
}

func zero(data []byte) {
	for index := range data {
		data[index] = 0
	}
}
