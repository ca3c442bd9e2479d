// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/hierarchy"
)

// Describe writes the identity fields of an element followed by its
// kind-specific detail and, for containers, a block per child.
func (p *Printer) Describe(description *hierarchy.Description) error {
	lines := p.describeLines(description, "")
	if len(description.Children) > 0 {
		lines = append(lines, "", p.header.Render("Contents:"))
		for index := range description.Children {
			if index > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, p.describeLines(&description.Children[index], "  ")...)
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) describeLines(description *hierarchy.Description, indent string) []string {
	row := description.Row
	fields := []Field{
		{"Name", row.Name},
		{"Type", row.Type},
		{"Path", row.Path},
		{"ID", orDash(row.ID)},
		{"Created", formatTime(row.Created)},
	}
	if row.Description != "" {
		fields = append(fields, Field{"Description", PlainText(row.Description)})
	}
	if detail := description.Detail; detail != nil && detail.DefaultProfileID != "" {
		fields = append(fields, Field{"Default profile", detail.DefaultProfileID})
	}
	if file := description.File; file != nil && !file.IsDirectory() {
		fields = append(fields, Field{"Size", fmt.Sprintf("%d bytes", file.Size)})
		if file.MimeType != "" {
			fields = append(fields, Field{"MIME type", file.MimeType})
		}
		for _, checksum := range file.Checksums {
			fields = append(fields, Field{"Checksum", checksum.Type + ":" + checksum.Value})
		}
	}

	lines := p.fieldLines(fields, indent)

	if detail := description.Detail; detail != nil {
		lines = append(lines, p.detailLines(detail, indent)...)
	}
	if table := description.Table; table != nil {
		lines = append(lines, p.columnLines(table, indent)...)
	}
	return lines
}

func (p *Printer) detailLines(detail *catalog.Detail, indent string) []string {
	var lines []string
	if len(detail.Tables) > 0 {
		lines = append(lines, indent+p.label.Render("Tables:"))
		for _, table := range detail.Tables {
			lines = append(lines, fmt.Sprintf("%s  %s (%d columns, %d rows)", indent, table.Name, len(table.Columns), table.RowCount))
		}
	}
	if len(detail.Relationships) > 0 {
		lines = append(lines, indent+p.label.Render("Relationships:"))
		for _, relationship := range detail.Relationships {
			lines = append(lines, fmt.Sprintf("%s  %s: %s.%s -> %s.%s", indent, relationship.Name,
				relationship.From.Table, relationship.From.Column,
				relationship.To.Table, relationship.To.Column))
		}
	}
	if len(detail.Assets) > 0 {
		lines = append(lines, indent+p.label.Render("Assets:"))
		for _, asset := range detail.Assets {
			lines = append(lines, fmt.Sprintf("%s  %s (root %s.%s)", indent, asset.Name, asset.RootTable, asset.RootColumn))
		}
	}
	if len(detail.Sources) > 0 {
		lines = append(lines, indent+p.label.Render("Sources:")+" "+strings.Join(detail.Sources, ", "))
	}
	return lines
}

func (p *Printer) columnLines(table *catalog.Table, indent string) []string {
	lines := []string{indent + p.label.Render("Columns:")}
	width := 0
	for _, column := range table.Columns {
		width = max(width, len(column.Name))
	}
	primary := make(map[string]bool, len(table.PrimaryKey))
	for _, name := range table.PrimaryKey {
		primary[name] = true
	}
	for _, column := range table.Columns {
		dataType := column.DataType
		if column.ArrayOf {
			dataType = "array<" + dataType + ">"
		}
		line := fmt.Sprintf("%s  %-*s  %s", indent, width, column.Name, dataType)
		if primary[column.Name] {
			line += " " + p.faint.Render("(primary key)")
		}
		lines = append(lines, line)
	}
	if len(table.Columns) == 0 {
		lines = append(lines, indent+"  (none)")
	}
	return lines
}
