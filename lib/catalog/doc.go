// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog is the boundary to the remote data catalog service.
//
// The catalog stores collections of three kinds: datasets, legacy
// studies and snapshots. Every collection owns a file tree and a set of
// tabular schemas. The package defines the operations the CLI consumes
// as small interfaces ([Service], [Mutator], [Streamer], [Identity]) and
// one implementation, [Client], which speaks JSON over HTTP.
//
// Every method performs exactly one blocking request. There is no
// caching, batching or retrying here: non-2xx responses come back as
// [*APIError] and callers decide what a failure means.
package catalog
