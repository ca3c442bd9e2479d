// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package render

import "fmt"

// Field is one labelled value of a field block.
type Field struct {
	Label string
	Value string
}

// Fields writes one "Label: value" line per field with the values
// aligned. Empty values print as "-".
func (p *Printer) Fields(fields []Field) error {
	for _, line := range p.fieldLines(fields, "") {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return err
		}
	}
	return nil
}

// Line writes text followed by a newline.
func (p *Printer) Line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.out, format+"\n", args...)
	return err
}

func (p *Printer) fieldLines(fields []Field, indent string) []string {
	width := 0
	for _, field := range fields {
		width = max(width, len(field.Label))
	}
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		label := p.label.Render(fmt.Sprintf("%-*s", width+1, field.Label+":"))
		lines = append(lines, indent+label+" "+orDash(field.Value))
	}
	return lines
}
