// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/catalog-foundation/catalog/lib/hierarchy"
)

// Rows writes one aligned line per row under a TYPE NAME CREATED ID
// DESCRIPTION header. Descriptions are reduced to one line of plain
// text and truncated. An empty slice writes nothing.
func (p *Printer) Rows(rows []hierarchy.Row) error {
	if len(rows) == 0 {
		return nil
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "TYPE\tNAME\tCREATED\tID\tDESCRIPTION")
	for _, row := range rows {
		lines = append(lines, strings.Join([]string{
			row.Type,
			row.Name,
			formatTime(row.Created),
			orDash(row.ID),
			orDash(Truncate(PlainText(row.Description), p.descriptionWidth)),
		}, "\t"))
	}
	return p.writeTable(lines)
}

// Heading writes the path line that precedes each block of a
// recursive listing.
func (p *Printer) Heading(path string) error {
	_, err := fmt.Fprintln(p.out, p.header.Render(path+":"))
	return err
}

// Blank writes an empty separator line.
func (p *Printer) Blank() error {
	_, err := fmt.Fprintln(p.out)
	return err
}

// TreeLine writes "name (type)" indented by depth levels.
func (p *Printer) TreeLine(depth int, row hierarchy.Row) error {
	style := p.container
	if row.Type == hierarchy.KindFile.String() || row.Type == hierarchy.KindTable.String() {
		style = p.leaf
	}
	_, err := fmt.Fprintf(p.out, "%s%s %s\n",
		strings.Repeat(p.treeIndent, depth),
		style.Render(row.Name),
		p.faint.Render("("+row.Type+")"),
	)
	return err
}
