// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import "github.com/catalog-foundation/catalog/lib/syntax"

// Command ids. The numbering is stable: scripts and tests refer to
// commands by id through [syntax.Result.CommandID].
const (
	CmdList = iota
	CmdTree
	CmdDescribe
	CmdStream
	CmdCd
	CmdPwd
	CmdDatasetCreate
	CmdDatasetDelete
	CmdSnapshotCreate
	CmdSnapshotDelete
	CmdIngestFile
	CmdIngestTable
	CmdLogin
	CmdLogout
	CmdWhoAmI
	CmdSessionShow
	CmdConfigShow
	CmdVersion
)

// Program is the binary name used in usage and help text.
const Program = "catalog"

var pathArgument = syntax.Argument{Name: "path", Help: "logical path, absolute or relative to the working path"}

var grammar = syntax.MustGrammar(Program,
	syntax.Command{
		ID:      CmdList,
		Names:   []string{"list"},
		Aliases: []string{"ls"},
		Options: []syntax.Option{
			{Short: "r", Long: "recursive", Help: "list every container below the path"},
		},
		Arguments: []syntax.Argument{pathArgument},
		Summary:   "List the children of a path",
		Description: `List the elements directly under a path, one row per element with
its type, name, creation time, id, and description. Listing a file or
table prints that element as the only row.

With -r, every container below the path is listed in turn, each under
a "path:" heading.`,
	},
	syntax.Command{
		ID:    CmdTree,
		Names: []string{"tree"},
		Options: []syntax.Option{
			{Short: "d", Long: "depth", TakesValue: true, ValueName: "n", Help: "stop descending after n levels (default: unbounded)"},
		},
		Arguments: []syntax.Argument{pathArgument},
		Summary:   "Print the hierarchy below a path as an indented tree",
	},
	syntax.Command{
		ID:        CmdDescribe,
		Names:     []string{"describe"},
		Aliases:   []string{"info"},
		Arguments: []syntax.Argument{pathArgument},
		Summary:   "Show the full description of an element",
		Description: `Show everything the catalog knows about one element. Collections
include their schema (tables, relationships, assets) and a summary of
their children; tables include their columns.`,
	},
	syntax.Command{
		ID:      CmdStream,
		Names:   []string{"stream"},
		Aliases: []string{"cat"},
		Options: []syntax.Option{
			{Short: "o", Long: "output", TakesValue: true, ValueName: "file", Help: "write to file instead of stdout"},
			{Short: "z", Long: "decompress", Help: "decompress .gz, .zst, and .lz4 files while streaming"},
			{Long: "digest", Help: "print the BLAKE3 digest of the written bytes to stderr"},
		},
		Arguments: []syntax.Argument{{Name: "path", Required: true, Help: "logical path of a file"}},
		Summary:   "Write the contents of a file",
	},
	syntax.Command{
		ID:        CmdCd,
		Names:     []string{"cd"},
		Arguments: []syntax.Argument{pathArgument},
		Summary:   "Change the working path",
		Description: `Resolve a path and store it as the working path for later commands.
The path must name a container, not a file or table. Without a path,
the working path returns to the root.`,
	},
	syntax.Command{
		ID:      CmdPwd,
		Names:   []string{"pwd"},
		Summary: "Print the working path",
	},
	syntax.Command{
		ID:    CmdDatasetCreate,
		Names: []string{"dataset", "create"},
		Options: []syntax.Option{
			{Short: "f", Long: "file", TakesValue: true, ValueName: "request", Required: true, Help: "dataset request file (JSON, comments allowed)"},
		},
		Summary: "Create a dataset from a request file",
	},
	syntax.Command{
		ID:        CmdDatasetDelete,
		Names:     []string{"dataset", "delete"},
		Arguments: []syntax.Argument{{Name: "name", Required: true}},
		Summary:   "Delete a dataset by name",
	},
	syntax.Command{
		ID:    CmdSnapshotCreate,
		Names: []string{"snapshot", "create"},
		Options: []syntax.Option{
			{Short: "f", Long: "file", TakesValue: true, ValueName: "request", Required: true, Help: "snapshot request file (JSON, comments allowed)"},
		},
		Summary: "Create a snapshot from a request file",
	},
	syntax.Command{
		ID:        CmdSnapshotDelete,
		Names:     []string{"snapshot", "delete"},
		Arguments: []syntax.Argument{{Name: "name", Required: true}},
		Summary:   "Delete a snapshot by name",
	},
	syntax.Command{
		ID:    CmdIngestFile,
		Names: []string{"ingest", "file"},
		Options: []syntax.Option{
			{Short: "s", Long: "source", TakesValue: true, ValueName: "uri", Required: true, Help: "source object to copy"},
			{Short: "t", Long: "target", TakesValue: true, ValueName: "path", Required: true, Help: "destination path in the dataset's file tree"},
			{Short: "p", Long: "profile", TakesValue: true, ValueName: "id", Help: "billing profile (default: the dataset's)"},
		},
		Arguments: []syntax.Argument{{Name: "dataset", Required: true}},
		Summary:   "Copy one file into a dataset",
	},
	syntax.Command{
		ID:    CmdIngestTable,
		Names: []string{"ingest", "table"},
		Options: []syntax.Option{
			{Short: "s", Long: "source", TakesValue: true, ValueName: "uri", Required: true, Help: "source object holding the rows"},
			{Short: "F", Long: "format", TakesValue: true, ValueName: "csv|json", Help: "row format (default: csv)"},
			{Short: "f", Long: "file", TakesValue: true, ValueName: "request", Help: "ingest options file (JSON, comments allowed)"},
		},
		Arguments: []syntax.Argument{
			{Name: "dataset", Required: true},
			{Name: "table", Required: true},
		},
		Summary: "Load rows into a dataset table",
	},
	syntax.Command{
		ID:    CmdLogin,
		Names: []string{"login"},
		Options: []syntax.Option{
			{Short: "t", Long: "token-file", TakesValue: true, ValueName: "path", Help: "read the token from path, or - for stdin (default: prompt)"},
		},
		Summary: "Store a bearer token for the configured server",
		Description: `Verify a bearer token against the server and save it in the session
file (mode 0600). Later commands send it transparently.`,
	},
	syntax.Command{
		ID:      CmdLogout,
		Names:   []string{"logout"},
		Summary: "Forget the stored token",
	},
	syntax.Command{
		ID:      CmdWhoAmI,
		Names:   []string{"whoami"},
		Summary: "Show who the stored token belongs to",
	},
	syntax.Command{
		ID:      CmdSessionShow,
		Names:   []string{"session", "show"},
		Summary: "Show the persisted session",
	},
	syntax.Command{
		ID:      CmdConfigShow,
		Names:   []string{"config", "show"},
		Summary: "Show the effective configuration",
	},
	syntax.Command{
		ID:      CmdVersion,
		Names:   []string{"version"},
		Summary: "Print version information",
	},
)

// Grammar returns the catalog command grammar.
func Grammar() *syntax.Grammar {
	return grammar
}
