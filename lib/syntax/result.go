// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"fmt"
	"strconv"
)

// NoCommand is the command id of a result that has not matched any
// command yet.
const NoCommand = -1

// Result is the outcome of a successful parse: the matched command id and
// every switch and argument value found on the command line. Switches
// that take no value are recorded with an empty string.
type Result struct {
	CommandID int
	Values    map[string]string
}

func newResult() *Result {
	return &Result{CommandID: NoCommand, Values: map[string]string{}}
}

// Found reports whether key was present on the command line.
func (r *Result) Found(key string) bool {
	_, ok := r.Values[key]
	return ok
}

// Value returns the value recorded for key, or "" when absent.
func (r *Result) Value(key string) string {
	return r.Values[key]
}

// Lookup returns the value recorded for key and whether it was present.
func (r *Result) Lookup(key string) (string, bool) {
	value, ok := r.Values[key]
	return value, ok
}

// Int returns the value for key parsed as a decimal integer, or fallback
// when key is absent.
func (r *Result) Int(key string, fallback int) (int, error) {
	value, ok := r.Values[key]
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return parsed, nil
}
