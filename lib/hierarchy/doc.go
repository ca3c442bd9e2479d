// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package hierarchy models the catalog as a tree of elements and
// resolves slash-delimited logical paths against it.
//
// The tree has a fixed shape:
//
//	/                         root
//	/<collection>             dataset, study, or snapshot
//	/<collection>/files       file tree of the collection
//	/<collection>/files/...   directories and files
//	/<collection>/tables      table schemas of the collection
//	/<collection>/tables/<t>  one table
//
// An [Element] is a tagged value: its [Kind] selects which of the
// optional fields are set and how the [Navigator] enumerates and looks
// up its children. Elements are created fresh for every resolution and
// are never cached; each remote call the navigator makes is a single
// blocking request through a [catalog.Service].
//
// Resolution walks the token list of a path from the root. Each step
// hands the element the remaining tokens and gets back the next element
// together with the tokens it did not consume. The token slice is never
// modified in place. Directories under files/ are resolved with one
// remote lookup of the whole remaining path.
//
// The traversal drivers ([Navigator.List], [Navigator.ListRecursive],
// [Navigator.Tree], [Navigator.Describe]) are built on
// [Navigator.Enumerate] and report elements through callbacks, leaving
// formatting to the caller.
package hierarchy
