// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/catalog-foundation/catalog/cmd/catalog/cli"
	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/render"
	"github.com/catalog-foundation/catalog/lib/syntax"
)

// readRequest reads a request file that may contain comments and
// trailing commas and returns it as plain JSON.
func readRequest(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cli.Validation("reading request file: %v", err)
	}
	converted := jsonc.ToJSON(data)
	if !json.Valid(converted) {
		return nil, cli.Validation("request file %s is not valid JSON", path)
	}
	return json.RawMessage(converted), nil
}

// findCollection returns the id of the collection of kind named
// exactly name. The server's name filter matches substrings, so every
// page is checked for an exact match.
func (a *App) findCollection(ctx context.Context, kind catalog.Kind, name string) (string, error) {
	pageSize := a.Config.Listing.PageSize
	for offset := 0; ; offset += pageSize {
		page, err := a.Service.EnumerateByKind(ctx, kind, name, offset, pageSize)
		if err != nil {
			return "", err
		}
		for _, summary := range page {
			if summary.Name == name {
				return summary.ID, nil
			}
		}
		if len(page) < pageSize {
			break
		}
	}
	return "", cli.NotFound("%s %q not found", kind, name).
		WithHint(fmt.Sprintf("Run '%s list /' to see available collections.", Program))
}

func (a *App) emitJob(job *catalog.Job, action string) error {
	a.Logger.Info("job submitted", "action", action, "job", job.ID, "status", job.Status)
	return a.Output.Emit(job, func(printer *render.Printer) error {
		return printer.Fields([]render.Field{
			{Label: "Action", Value: action},
			{Label: "Job", Value: job.ID},
			{Label: "Status", Value: job.Status},
			{Label: "Description", Value: job.Description},
		})
	})
}

func runDatasetCreate(ctx context.Context, app *App, result *syntax.Result) error {
	request, err := readRequest(result.Value("file"))
	if err != nil {
		return err
	}
	job, err := app.Mutator.CreateDataset(ctx, request)
	if err != nil {
		return err
	}
	return app.emitJob(job, "create dataset")
}

func runDatasetDelete(ctx context.Context, app *App, result *syntax.Result) error {
	name := result.Value("name")
	id, err := app.findCollection(ctx, catalog.KindDataset, name)
	if err != nil {
		return err
	}
	job, err := app.Mutator.DeleteDataset(ctx, id)
	if err != nil {
		return err
	}
	return app.emitJob(job, "delete dataset "+name)
}

func runSnapshotCreate(ctx context.Context, app *App, result *syntax.Result) error {
	request, err := readRequest(result.Value("file"))
	if err != nil {
		return err
	}
	job, err := app.Mutator.CreateSnapshot(ctx, request)
	if err != nil {
		return err
	}
	return app.emitJob(job, "create snapshot")
}

func runSnapshotDelete(ctx context.Context, app *App, result *syntax.Result) error {
	name := result.Value("name")
	id, err := app.findCollection(ctx, catalog.KindSnapshot, name)
	if err != nil {
		return err
	}
	job, err := app.Mutator.DeleteSnapshot(ctx, id)
	if err != nil {
		return err
	}
	return app.emitJob(job, "delete snapshot "+name)
}

func runIngestFile(ctx context.Context, app *App, result *syntax.Result) error {
	name := result.Value("dataset")
	id, err := app.findCollection(ctx, catalog.KindDataset, name)
	if err != nil {
		return err
	}
	request := catalog.FileIngest{
		SourcePath: result.Value("source"),
		TargetPath: result.Value("target"),
		ProfileID:  result.Value("profile"),
	}
	job, err := app.Mutator.IngestFile(ctx, id, request)
	if err != nil {
		return err
	}
	return app.emitJob(job, "ingest file into "+name)
}

func runIngestTable(ctx context.Context, app *App, result *syntax.Result) error {
	var request catalog.TableIngest
	if path, ok := result.Lookup("file"); ok {
		raw, err := readRequest(path)
		if err != nil {
			return err
		}
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&request); err != nil {
			return cli.Validation("request file %s: %v", path, err)
		}
	}

	request.Table = result.Value("table")
	request.Path = result.Value("source")
	if format, ok := result.Lookup("format"); ok {
		request.Format = format
	}
	if request.Format == "" {
		request.Format = "csv"
	}
	if request.Format != "csv" && request.Format != "json" {
		return cli.Validation("format must be csv or json, got %q", request.Format)
	}

	name := result.Value("dataset")
	id, err := app.findCollection(ctx, catalog.KindDataset, name)
	if err != nil {
		return err
	}
	job, err := app.Mutator.IngestTable(ctx, id, request)
	if err != nil {
		return err
	}
	return app.emitJob(job, "ingest table "+request.Table+" into "+name)
}
