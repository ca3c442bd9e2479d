// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParserInstance
}

// PlainText reduces Markdown to a single line of its visible text.
// Emphasis, links, and headings keep only their text; code blocks keep
// their contents; raw HTML is dropped. Runs of whitespace, including
// line and block breaks, collapse to one space.
func PlainText(markdown string) string {
	if markdown == "" {
		return ""
	}
	source := []byte(markdown)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	var builder strings.Builder
	ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if node.Type() == ast.TypeBlock {
				builder.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch typed := node.(type) {
		case *ast.Text:
			builder.Write(typed.Segment.Value(source))
			if typed.SoftLineBreak() || typed.HardLineBreak() {
				builder.WriteByte(' ')
			}
		case *ast.String:
			builder.Write(typed.Value)
		case *ast.AutoLink:
			builder.Write(typed.Label(source))
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := node.Lines()
			for index := 0; index < lines.Len(); index++ {
				segment := lines.At(index)
				builder.Write(segment.Value(source))
				builder.WriteByte(' ')
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(builder.String()), " ")
}
