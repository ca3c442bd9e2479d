// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"reflect"

	"github.com/catalog-foundation/catalog/lib/render"
)

// Output is where command handlers write results. With JSON set,
// [Output.Emit] writes the structured value; otherwise it calls the
// handler's text formatter.
type Output struct {
	// Printer renders to stdout.
	Printer *render.Printer

	// Stdout is the raw stdout writer, for byte streams.
	Stdout io.Writer

	// Stderr receives progress notes and digests.
	Stderr io.Writer

	// JSON selects structured output.
	JSON bool
}

// Emit writes value as JSON when --json is set, or calls text
// otherwise. Nil slices are written as [] rather than null.
func (o *Output) Emit(value any, text func(*render.Printer) error) error {
	if o.JSON {
		return o.Printer.JSON(normalizeNilSlice(value))
	}
	return text(o.Printer)
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice, so that JSON serialization produces [] instead of
// null. Returns value unchanged for all other types.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
