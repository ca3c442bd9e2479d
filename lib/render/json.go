// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/chroma/v2/quick"
)

// JSON writes value as indented JSON. When the printer emits color the
// document is syntax-highlighted.
func (p *Printer) JSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	data = append(data, '\n')

	if p.color {
		if err := quick.Highlight(p.out, string(data), "json", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err = p.out.Write(data)
	return err
}
