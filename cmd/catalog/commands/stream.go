// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/catalog-foundation/catalog/cmd/catalog/cli"
	"github.com/catalog-foundation/catalog/lib/hierarchy"
	"github.com/catalog-foundation/catalog/lib/syntax"
	"github.com/catalog-foundation/catalog/lib/transfer"
)

func runStream(ctx context.Context, app *App, result *syntax.Result) error {
	_, element, err := app.resolve(ctx, result.Value("path"))
	if err != nil {
		return err
	}
	if element.Kind != hierarchy.KindFile {
		return cli.Validation("%s is a %s; only files can be streamed", element.Path, element.Kind)
	}

	options := transfer.Options{Digest: result.Found("digest")}
	if result.Found("decompress") {
		options.Compression = transfer.DetectCompression(element.Name)
		if options.Compression == transfer.CompressionNone {
			return cli.Validation("cannot tell how %s is compressed", element.Name).
				WithHint("--decompress recognizes .gz, .zst, and .lz4 files.")
		}
	}

	source, err := app.Streamer.OpenFile(ctx, element.Collection.Kind, element.Collection.ID, element.ID)
	if err != nil {
		return err
	}
	defer source.Close()

	var destination io.Writer = app.Output.Stdout
	outputPath, toFile := result.Lookup("output")
	var file *os.File
	if toFile {
		file, err = os.Create(outputPath)
		if err != nil {
			return cli.Validation("creating output file: %v", err)
		}
		destination = file
	}

	copied, err := transfer.Copy(destination, source, options)
	if file != nil {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(outputPath)
		}
	}
	if err != nil {
		return fmt.Errorf("streaming %s: %w", element.Path, err)
	}

	app.Logger.Debug("streamed file",
		"path", element.Path,
		"bytes", copied.Bytes,
		"compression", options.Compression.String(),
	)
	if options.Digest {
		fmt.Fprintf(app.Output.Stderr, "blake3:%s  %s\n", copied.Digest, element.Path)
	}
	return nil
}
