// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/hierarchy"
)

var created = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func newPlainPrinter(options Options) (*Printer, *bytes.Buffer) {
	var buffer bytes.Buffer
	options.Color = ColorNever
	return New(&buffer, options), &buffer
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", "", true},
	}
	for _, test := range tests {
		got, err := ParseColorMode(test.input)
		if (err != nil) != test.wantErr || got != test.want {
			t.Errorf("ParseColorMode(%q) = %q, %v; want %q, wantErr %v", test.input, got, err, test.want, test.wantErr)
		}
	}
}

func TestAutoColorOnBufferIsOff(t *testing.T) {
	printer := New(&bytes.Buffer{}, Options{Color: ColorAuto})
	if printer.Color() {
		t.Error("auto color enabled for a non-terminal writer")
	}
	if !New(&bytes.Buffer{}, Options{Color: ColorAlways}).Color() {
		t.Error("always color disabled")
	}
}

func TestRows(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{})
	err := printer.Rows([]hierarchy.Row{
		{Type: "dataset", Name: "genomes", Created: created, ID: "ds-1", Description: "**Whole** genome\nreads"},
		{Type: "tables", Name: "tables", Created: created},
	})
	if err != nil {
		t.Fatalf("Rows() error: %v", err)
	}
	want := "" +
		"TYPE     NAME     CREATED               ID    DESCRIPTION\n" +
		"dataset  genomes  2025-06-01T09:30:00Z  ds-1  Whole genome reads\n" +
		"tables   tables   2025-06-01T09:30:00Z  -     -\n"
	if got := buffer.String(); got != want {
		t.Errorf("Rows() =\n%s\nwant\n%s", got, want)
	}
}

func TestRowsEmpty(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{})
	if err := printer.Rows(nil); err != nil {
		t.Fatalf("Rows(nil) error: %v", err)
	}
	if buffer.Len() != 0 {
		t.Errorf("Rows(nil) wrote %q, want nothing", buffer.String())
	}
}

func TestRowsTruncatesDescription(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{DescriptionWidth: 10})
	err := printer.Rows([]hierarchy.Row{{Type: "file", Name: "a", Description: "a description well past ten cells"}})
	if err != nil {
		t.Fatalf("Rows() error: %v", err)
	}
	if !strings.Contains(buffer.String(), "a descrip…") {
		t.Errorf("Rows() = %q, want truncated description", buffer.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much longer text", 5, "much…"},
		{"unbounded", 0, "unbounded"},
	}
	for _, test := range tests {
		if got := Truncate(test.input, test.width); got != test.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", test.input, test.width, got, test.want)
		}
	}
}

func TestTreeLine(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{TreeIndent: "| "})
	printer.TreeLine(0, hierarchy.Row{Type: "dataset", Name: "genomes"})
	printer.TreeLine(1, hierarchy.Row{Type: "files", Name: "files"})
	printer.TreeLine(2, hierarchy.Row{Type: "file", Name: "README"})

	want := "genomes (dataset)\n| files (files)\n| | README (file)\n"
	if got := buffer.String(); got != want {
		t.Errorf("TreeLine output =\n%s\nwant\n%s", got, want)
	}
}

func TestTreeLineDefaultIndent(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{})
	printer.TreeLine(2, hierarchy.Row{Type: "table", Name: "sample"})
	if got, want := buffer.String(), "    sample (table)\n"; got != want {
		t.Errorf("TreeLine = %q, want %q", got, want)
	}
}

func TestHeading(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{})
	printer.Heading("/genomes/files")
	printer.Blank()
	if got, want := buffer.String(), "/genomes/files:\n\n"; got != want {
		t.Errorf("Heading = %q, want %q", got, want)
	}
}

func TestDescribeCollection(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{})
	description := &hierarchy.Description{
		Row: hierarchy.Row{Type: "dataset", Name: "genomes", Path: "/genomes", ID: "ds-1", Created: created, Description: "Reads"},
		Detail: &catalog.Detail{
			Tables: []catalog.Table{{Name: "sample", Columns: []catalog.Column{{Name: "id"}}, RowCount: 4}},
			Relationships: []catalog.Relationship{{
				Name: "sample_donor",
				From: catalog.ColumnRef{Table: "sample", Column: "donor"},
				To:   catalog.ColumnRef{Table: "donor", Column: "id"},
			}},
		},
		Children: []hierarchy.Description{
			{Row: hierarchy.Row{Type: "files", Name: "files", Path: "/genomes/files", ID: "ds-1", Created: created}},
			{Row: hierarchy.Row{Type: "tables", Name: "tables", Path: "/genomes/tables", ID: "ds-1", Created: created}},
		},
	}
	if err := printer.Describe(description); err != nil {
		t.Fatalf("Describe() error: %v", err)
	}

	output := buffer.String()
	for _, want := range []string{
		"Name:        genomes\n",
		"Description: Reads\n",
		"Tables:\n  sample (1 columns, 4 rows)\n",
		"  sample_donor: sample.donor -> donor.id\n",
		"Contents:\n  Name:    files\n",
		"  Path:    /genomes/tables\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Describe() output missing %q:\n%s", want, output)
		}
	}
}

func TestDescribeTableAndFile(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{})
	printer.Describe(&hierarchy.Description{
		Row: hierarchy.Row{Type: "table", Name: "sample", Path: "/genomes/tables/sample"},
		Table: &catalog.Table{
			Name:       "sample",
			PrimaryKey: []string{"id"},
			Columns: []catalog.Column{
				{Name: "id", DataType: "string"},
				{Name: "tags", DataType: "string", ArrayOf: true},
			},
		},
	})
	output := buffer.String()
	if !strings.Contains(output, "  id    string (primary key)\n") || !strings.Contains(output, "  tags  array<string>\n") {
		t.Errorf("table describe output:\n%s", output)
	}

	buffer.Reset()
	printer.Describe(&hierarchy.Description{
		Row: hierarchy.Row{Type: "file", Name: "a.bam", Path: "/genomes/files/a.bam", ID: "f-1"},
		File: &catalog.FileNode{
			Type:      catalog.FileTypeFile,
			Size:      2048,
			MimeType:  "application/octet-stream",
			Checksums: []catalog.Checksum{{Type: "md5", Value: "abc"}},
		},
	})
	output = buffer.String()
	for _, want := range []string{"Size:      2048 bytes\n", "MIME type: application/octet-stream\n", "Checksum:  md5:abc\n"} {
		if !strings.Contains(output, want) {
			t.Errorf("file describe output missing %q:\n%s", want, output)
		}
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"**Whole** genome _reads_", "Whole genome reads"},
		{"# Title\n\nFirst line\nsecond line", "Title First line second line"},
		{"See [the docs](https://example.org) and `code`.", "See the docs and code."},
		{"- one\n- two", "one two"},
		{"before <b>html</b> after", "before html after"},
		{"```\nfenced\n```", "fenced"},
	}
	for _, test := range tests {
		if got := PlainText(test.input); got != test.want {
			t.Errorf("PlainText(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestJSONPlain(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{})
	if err := printer.JSON(map[string]int{"count": 2}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if got, want := buffer.String(), "{\n  \"count\": 2\n}\n"; got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}

func TestJSONHighlighted(t *testing.T) {
	var buffer bytes.Buffer
	printer := New(&buffer, Options{Color: ColorAlways})
	if err := printer.JSON([]string{"a"}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if !strings.Contains(buffer.String(), "\x1b[") {
		t.Errorf("highlighted JSON has no escape sequences: %q", buffer.String())
	}
	var decoded []string
	if err := json.Unmarshal([]byte(stripANSI(buffer.String())), &decoded); err != nil || decoded[0] != "a" {
		t.Errorf("highlighted JSON does not decode after stripping: %v", err)
	}
}

func stripANSI(s string) string {
	var builder strings.Builder
	for index := 0; index < len(s); index++ {
		if s[index] == 0x1b {
			for index < len(s) && s[index] != 'm' {
				index++
			}
			continue
		}
		builder.WriteByte(s[index])
	}
	return builder.String()
}

func TestFields(t *testing.T) {
	printer, buffer := newPlainPrinter(Options{})
	err := printer.Fields([]Field{
		{Label: "Job", Value: "job-4"},
		{Label: "Description", Value: ""},
	})
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	want := "Job:         job-4\nDescription: -\n"
	if got := buffer.String(); got != want {
		t.Errorf("Fields() = %q, want %q", got, want)
	}
}
