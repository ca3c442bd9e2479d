// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package render formats catalog elements for the terminal: listing
// tables, tree lines, describe blocks, and JSON.
//
// All output goes through a [Printer], which decides once whether to
// emit color. Styled text is produced by a lipgloss renderer bound to
// the printer's writer so that color detection follows the actual
// output stream rather than the process's stdout.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name. The empty string means
// ColorAuto.
func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(value)) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always, or never)", value)
}

// DefaultTreeIndent is the per-level prefix of tree lines.
const DefaultTreeIndent = "  "

// DefaultDescriptionWidth bounds the description column of listings.
const DefaultDescriptionWidth = 60

// Options configures a Printer.
type Options struct {
	Color ColorMode

	// TreeIndent is repeated once per depth level before each tree
	// line. Empty means DefaultTreeIndent.
	TreeIndent string

	// DescriptionWidth truncates listing descriptions to this many
	// cells. Zero means DefaultDescriptionWidth; negative disables
	// truncation.
	DescriptionWidth int
}

// Printer writes formatted catalog output to one writer.
type Printer struct {
	out              io.Writer
	color            bool
	treeIndent       string
	descriptionWidth int

	header    lipgloss.Style
	container lipgloss.Style
	leaf      lipgloss.Style
	faint     lipgloss.Style
	label     lipgloss.Style
}

// New creates a Printer writing to out.
func New(out io.Writer, options Options) *Printer {
	color := wantColor(out, options.Color)
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	renderer := lipgloss.NewRenderer(out, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	treeIndent := options.TreeIndent
	if treeIndent == "" {
		treeIndent = DefaultTreeIndent
	}
	descriptionWidth := options.DescriptionWidth
	if descriptionWidth == 0 {
		descriptionWidth = DefaultDescriptionWidth
	}

	return &Printer{
		out:              out,
		color:            color,
		treeIndent:       treeIndent,
		descriptionWidth: descriptionWidth,
		header:           renderer.NewStyle().Bold(true),
		container:        renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		leaf:             renderer.NewStyle(),
		faint:            renderer.NewStyle().Faint(true),
		label:            renderer.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Color reports whether the printer emits ANSI styling.
func (p *Printer) Color() bool {
	return p.color
}

// wantColor resolves auto mode against the writer: color only for a
// terminal, and never when NO_COLOR is set.
func wantColor(out io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// Truncate shortens s to at most width cells, marking the cut with an
// ellipsis. A non-positive width leaves s unchanged.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format(time.RFC3339)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

// writeTable aligns tab-separated lines and styles the first line as a
// header. Styling is applied after alignment so escape sequences do
// not disturb column widths.
func (p *Printer) writeTable(lines []string) error {
	var buffer strings.Builder
	writer := tabwriter.NewWriter(&buffer, 0, 0, 2, ' ', 0)
	for _, line := range lines {
		fmt.Fprintln(writer, line)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	aligned := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	for index, line := range aligned {
		line = strings.TrimRight(line, " ")
		if index == 0 {
			line = p.header.Render(line)
		}
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return err
		}
	}
	return nil
}
