// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package hierarchy

import "fmt"

// NotFoundError reports that no element matches Segment under the
// element at Path. For file lookups Segment may span several path
// components.
type NotFoundError struct {
	Path    string
	Segment string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no such element", joinPath(e.Path, e.Segment))
}

// UnsupportedError reports a segment that names something the element
// at Path cannot provide.
type UnsupportedError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", joinPath(e.Path, e.Segment), e.Reason)
}
