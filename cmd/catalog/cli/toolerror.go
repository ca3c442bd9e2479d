// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/hierarchy"
)

// ErrorCategory classifies command errors so that the exit status
// tells scripts what kind of failure occurred without parsing error
// text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// a malformed request file, a path of the wrong kind, an
	// unparseable value. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced catalog element does not
	// exist. Retrying with the same parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates missing or rejected credentials.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryConflict indicates the operation conflicts with existing
	// state, such as creating a dataset whose name is taken.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, server overload. The caller may retry later.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error.
	CategoryInternal ErrorCategory = "internal"
)

// ExitCode returns the process exit status for the category.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case CategoryValidation:
		return ExitValidation
	case CategoryNotFound:
		return ExitNotFound
	case CategoryForbidden:
		return ExitForbidden
	case CategoryConflict:
		return ExitConflict
	case CategoryTransient:
		return ExitTransient
	default:
		return ExitInternal
	}
}

// ToolError is a categorized error returned by command handlers. It
// wraps an inner error, preserving the full chain for errors.Is and
// errors.As. Use the category-specific constructors (Validation,
// NotFound, etc.) rather than constructing ToolError directly.
type ToolError struct {
	// Category classifies the error.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next step printed after the message.
	Hint string
}

// Error returns the underlying message, followed by the hint after a
// blank line when one is set.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced element does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the caller lacks permission.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the operation conflicts with existing state.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Categorize returns the category of err. An explicit ToolError wins;
// otherwise resolution errors, remote API errors, and network failures
// are classified by type, and anything else is internal.
func Categorize(err error) ErrorCategory {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Category
	}

	var notFound *hierarchy.NotFoundError
	if errors.As(err, &notFound) {
		return CategoryNotFound
	}
	var unsupported *hierarchy.UnsupportedError
	if errors.As(err, &unsupported) {
		return CategoryValidation
	}

	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		switch status := apiErr.StatusCode; {
		case status == http.StatusNotFound:
			return CategoryNotFound
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return CategoryForbidden
		case status == http.StatusConflict:
			return CategoryConflict
		case status == http.StatusTooManyRequests || status >= 500:
			return CategoryTransient
		case status >= 400:
			return CategoryValidation
		}
		return CategoryInternal
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return CategoryTransient
	}
	return CategoryInternal
}
