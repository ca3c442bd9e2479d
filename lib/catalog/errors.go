// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a structured error response from the catalog service.
// Callers use errors.As to inspect it:
//
//	var apiErr *catalog.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict { ... }
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
	// Message is the human-readable description from the server.
	Message string `json:"message"`
	// Details carries extra lines the server attached, such as
	// per-field validation failures.
	Details []string `json:"error_detail,omitempty"`
}

func (e *APIError) Error() string {
	text := fmt.Sprintf("catalog: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		text += ": " + e.Message
	}
	if len(e.Details) > 0 {
		text += " (" + strings.Join(e.Details, "; ") + ")"
	}
	return text
}

// HasStatus reports whether err is an *APIError with the given status.
func HasStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}

// IsNotFound reports whether err is a 404 from the catalog service.
func IsNotFound(err error) bool {
	return HasStatus(err, http.StatusNotFound)
}
