// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package hierarchy

import (
	"path"
	"strings"
)

// Normalize turns a logical path into a clean absolute path. Relative
// paths are taken from workingPath, and an empty path means
// workingPath itself. "." and ".." segments are collapsed; ".." at the
// root stays at the root.
func Normalize(workingPath, logicalPath string) string {
	if workingPath == "" || !strings.HasPrefix(workingPath, "/") {
		workingPath = "/" + workingPath
	}
	if logicalPath == "" {
		return path.Clean(workingPath)
	}
	if strings.HasPrefix(logicalPath, "/") {
		return path.Clean(logicalPath)
	}
	return path.Clean(workingPath + "/" + logicalPath)
}

// Split returns the non-empty segments of a path in order.
func Split(logicalPath string) []string {
	var tokens []string
	for _, segment := range strings.Split(logicalPath, "/") {
		if segment != "" {
			tokens = append(tokens, segment)
		}
	}
	return tokens
}

func joinPath(elements ...string) string {
	return path.Join(elements...)
}
