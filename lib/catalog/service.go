// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"encoding/json"
	"io"
)

// Service is the read side of the catalog used for navigation.
type Service interface {
	// EnumerateByKind lists one page of collections of the given kind.
	// A non-empty nameFilter narrows the results server-side; callers
	// must still compare names themselves since the filter may match
	// substrings.
	EnumerateByKind(ctx context.Context, kind Kind, nameFilter string, offset, limit int) ([]Summary, error)

	// RetrieveDetail returns the full schema of one collection.
	RetrieveDetail(ctx context.Context, kind Kind, id string) (*Detail, error)

	// LookupFileOrDirectory returns the node at path within a
	// collection's file tree, with directory contents populated depth
	// levels down.
	LookupFileOrDirectory(ctx context.Context, kind Kind, collectionID, path string, depth int) (*FileNode, error)

	// LookupTableSchema returns a collection's tables in declared order.
	LookupTableSchema(ctx context.Context, kind Kind, collectionID string) ([]Table, error)
}

// Mutator submits catalog mutations. Each call returns the job the
// server created to carry out the change.
type Mutator interface {
	CreateDataset(ctx context.Context, request json.RawMessage) (*Job, error)
	DeleteDataset(ctx context.Context, id string) (*Job, error)
	CreateSnapshot(ctx context.Context, request json.RawMessage) (*Job, error)
	DeleteSnapshot(ctx context.Context, id string) (*Job, error)
	IngestFile(ctx context.Context, datasetID string, request FileIngest) (*Job, error)
	IngestTable(ctx context.Context, datasetID string, request TableIngest) (*Job, error)
}

// Streamer opens file contents for reading.
type Streamer interface {
	OpenFile(ctx context.Context, kind Kind, collectionID, fileID string) (io.ReadCloser, error)
}

// Identity reports who the current credentials belong to.
type Identity interface {
	WhoAmI(ctx context.Context) (*User, error)
}
