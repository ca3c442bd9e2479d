// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/catalog-foundation/catalog/cmd/catalog/cli"
	"github.com/catalog-foundation/catalog/lib/hierarchy"
	"github.com/catalog-foundation/catalog/lib/render"
	"github.com/catalog-foundation/catalog/lib/syntax"
)

// listing is the JSON form of one container in a recursive list.
type listing struct {
	Path string          `json:"path"`
	Rows []hierarchy.Row `json:"rows"`
}

// treeLine is the JSON form of one tree node.
type treeLine struct {
	Depth int `json:"depth"`
	hierarchy.Row
}

type workingPath struct {
	WorkingPath string `json:"working_path"`
}

func rowsOf(elements []*hierarchy.Element) []hierarchy.Row {
	rows := make([]hierarchy.Row, len(elements))
	for index, element := range elements {
		rows[index] = element.Row()
	}
	return rows
}

func runList(ctx context.Context, app *App, result *syntax.Result) error {
	navigator, element, err := app.resolve(ctx, result.Value("path"))
	if err != nil {
		return err
	}

	if !result.Found("recursive") {
		elements, err := navigator.List(ctx, element)
		if err != nil {
			return err
		}
		rows := rowsOf(elements)
		return app.Output.Emit(rows, func(printer *render.Printer) error {
			return printer.Rows(rows)
		})
	}

	if app.Output.JSON {
		var listings []listing
		err := navigator.ListRecursive(ctx, element, func(parent *hierarchy.Element, children []*hierarchy.Element) error {
			listings = append(listings, listing{Path: parent.Path, Rows: rowsOf(children)})
			return nil
		})
		if err != nil {
			return err
		}
		return app.Output.Emit(listings, nil)
	}

	// Text output streams each container as soon as it is enumerated.
	printer := app.Output.Printer
	first := true
	return navigator.ListRecursive(ctx, element, func(parent *hierarchy.Element, children []*hierarchy.Element) error {
		if !first {
			if err := printer.Blank(); err != nil {
				return err
			}
		}
		first = false
		if err := printer.Heading(parent.Path); err != nil {
			return err
		}
		return printer.Rows(rowsOf(children))
	})
}

func runTree(ctx context.Context, app *App, result *syntax.Result) error {
	depth, err := result.Int("depth", hierarchy.Unbounded)
	if err != nil {
		return cli.Validation("%v", err)
	}
	if depth < 0 {
		return cli.Validation("depth must not be negative, got %d", depth)
	}

	navigator, element, err := app.resolve(ctx, result.Value("path"))
	if err != nil {
		return err
	}

	if app.Output.JSON {
		var lines []treeLine
		err := navigator.Tree(ctx, element, depth, func(level int, node *hierarchy.Element) error {
			lines = append(lines, treeLine{Depth: level, Row: node.Row()})
			return nil
		})
		if err != nil {
			return err
		}
		return app.Output.Emit(lines, nil)
	}

	printer := app.Output.Printer
	return navigator.Tree(ctx, element, depth, func(level int, node *hierarchy.Element) error {
		return printer.TreeLine(level, node.Row())
	})
}

func runDescribe(ctx context.Context, app *App, result *syntax.Result) error {
	navigator, element, err := app.resolve(ctx, result.Value("path"))
	if err != nil {
		return err
	}
	description, err := navigator.Describe(ctx, element)
	if err != nil {
		return err
	}
	return app.Output.Emit(description, func(printer *render.Printer) error {
		return printer.Describe(description)
	})
}

func runCd(ctx context.Context, app *App, result *syntax.Result) error {
	target := result.Value("path")
	if target == "" {
		target = "/"
	}
	_, element, err := app.resolve(ctx, target)
	if err != nil {
		return err
	}
	if element.IsLeaf() {
		return cli.Validation("%s is a %s, not a container", element.Path, element.Kind)
	}

	app.Session.WorkingPath = element.Path
	if err := app.saveSession(); err != nil {
		return err
	}
	app.Logger.Debug("working path changed", "path", element.Path)
	return app.Output.Emit(workingPath{WorkingPath: element.Path}, func(*render.Printer) error {
		return nil
	})
}

func runPwd(_ context.Context, app *App, _ *syntax.Result) error {
	current := workingPath{WorkingPath: app.Session.WorkingPath}
	return app.Output.Emit(current, func(printer *render.Printer) error {
		return printer.Line("%s", current.WorkingPath)
	})
}
