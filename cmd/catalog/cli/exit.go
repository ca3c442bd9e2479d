// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/catalog-foundation/catalog/lib/syntax"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Exit codes by error category. Parse errors share the validation
// code.
const (
	ExitOK         = 0
	ExitInternal   = 1
	ExitValidation = 2
	ExitNotFound   = 3
	ExitForbidden  = 4
	ExitConflict   = 5
	ExitTransient  = 6
)

// ExitCode maps an error returned by a command handler to the process
// exit status. Nil maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var parseErr *syntax.ParseError
	if errors.As(err, &parseErr) {
		return ExitValidation
	}
	return Categorize(err).ExitCode()
}
