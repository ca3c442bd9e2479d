// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/catalog-foundation/catalog/lib/catalog"
)

// DefaultPageSize is the enumeration page size used when Config leaves
// it unset.
const DefaultPageSize = 100

// Config holds the dependencies of a Navigator.
type Config struct {
	// Service answers every remote query. Required.
	Service catalog.Service

	// PageSize bounds each EnumerateByKind call. Zero means
	// DefaultPageSize.
	PageSize int

	// FileDepth is how many directory levels a file lookup fetches
	// eagerly. Enumerating a directory always fetches at least one.
	FileDepth int

	// Logger receives one debug record per resolution step. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// Navigator enumerates and resolves catalog elements.
type Navigator struct {
	service   catalog.Service
	pageSize  int
	fileDepth int
	logger    *slog.Logger
}

// NewNavigator creates a Navigator from config.
func NewNavigator(config Config) (*Navigator, error) {
	if config.Service == nil {
		return nil, fmt.Errorf("hierarchy: Service is required")
	}
	if config.PageSize < 0 {
		return nil, fmt.Errorf("hierarchy: PageSize must not be negative, got %d", config.PageSize)
	}
	if config.FileDepth < 0 {
		return nil, fmt.Errorf("hierarchy: FileDepth must not be negative, got %d", config.FileDepth)
	}
	pageSize := config.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{
		service:   config.Service,
		pageSize:  pageSize,
		fileDepth: config.FileDepth,
		logger:    logger,
	}, nil
}

// Root returns the root element.
func (n *Navigator) Root() *Element {
	return rootElement()
}

// Enumerate returns the children of e in display order. Leaves have
// no children.
func (n *Navigator) Enumerate(ctx context.Context, e *Element) ([]*Element, error) {
	switch e.Kind {
	case KindRoot:
		return n.enumerateRoot(ctx)
	case KindDataset, KindSnapshot:
		return []*Element{subCollection(e, KindFiles), subCollection(e, KindTables)}, nil
	case KindStudy:
		return []*Element{subCollection(e, KindTables)}, nil
	case KindFiles:
		root, err := n.fetchFiles(ctx, e, "/", max(n.fileDepth, 1))
		if err != nil {
			return nil, err
		}
		return n.fileChildren(e.Collection, root.File, root.loaded), nil
	case KindDirectory:
		if e.loaded > 0 {
			return n.fileChildren(e.Collection, e.File, e.loaded), nil
		}
		fetched, err := n.fetchFiles(ctx, e, e.File.Path, max(n.fileDepth, 1))
		if err != nil {
			return nil, err
		}
		return n.fileChildren(e.Collection, fetched.File, fetched.loaded), nil
	case KindTables:
		tables, err := n.service.LookupTableSchema(ctx, e.Collection.Kind, e.Collection.ID)
		if err != nil {
			return nil, fmt.Errorf("listing tables of %s: %w", e.Path, err)
		}
		children := make([]*Element, 0, len(tables))
		for index := range tables {
			children = append(children, tableElement(e, &tables[index]))
		}
		return children, nil
	case KindFile, KindTable:
		return nil, nil
	default:
		return nil, fmt.Errorf("hierarchy: cannot enumerate element of kind %s", e.Kind)
	}
}

// enumerateRoot lists every collection: datasets, then studies, then
// snapshots, paging each kind until a short page.
func (n *Navigator) enumerateRoot(ctx context.Context) ([]*Element, error) {
	var children []*Element
	for _, kind := range catalog.Kinds {
		err := n.pageCollections(ctx, kind, "", func(summary catalog.Summary) bool {
			children = append(children, collectionElement(kind, summary))
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return children, nil
}

// pageCollections calls visit for each collection of kind matching
// nameFilter until visit returns false or the listing is exhausted.
func (n *Navigator) pageCollections(ctx context.Context, kind catalog.Kind, nameFilter string, visit func(catalog.Summary) bool) error {
	for offset := 0; ; offset += n.pageSize {
		page, err := n.service.EnumerateByKind(ctx, kind, nameFilter, offset, n.pageSize)
		if err != nil {
			return fmt.Errorf("enumerating %s collections: %w", kind, err)
		}
		for _, summary := range page {
			if !visit(summary) {
				return nil
			}
		}
		if len(page) < n.pageSize {
			return nil
		}
	}
}

func (n *Navigator) fileChildren(collection *Collection, node *catalog.FileNode, loaded int) []*Element {
	prefix := joinPath("/", collection.Name, "files")
	children := make([]*Element, 0, len(node.Contents))
	for index := range node.Contents {
		children = append(children, fileElement(collection, prefix, &node.Contents[index], loaded-1))
	}
	return children
}

// fetchFiles issues one remote lookup of filePath inside the
// collection that owns e. A remote 404 becomes a NotFoundError
// relative to e.
func (n *Navigator) fetchFiles(ctx context.Context, e *Element, filePath string, depth int) (*Element, error) {
	node, err := n.service.LookupFileOrDirectory(ctx, e.Collection.Kind, e.Collection.ID, filePath, depth)
	if err != nil {
		if catalog.IsNotFound(err) {
			return nil, &NotFoundError{Path: e.Path, Segment: strings.TrimPrefix(relativeTo(e, filePath), "/")}
		}
		return nil, fmt.Errorf("looking up %s: %w", joinPath(filesPrefix(e), filePath), err)
	}
	return fileElement(e.Collection, filesPrefix(e), node, depth), nil
}

// relativeTo returns filePath relative to the file path of e, which is
// "/" for the files element itself.
func relativeTo(e *Element, filePath string) string {
	if e.File == nil {
		return filePath
	}
	return strings.TrimPrefix(filePath, e.File.Path)
}

// Lookup resolves the leading tokens against e. It returns the element
// reached and the tokens it did not consume. With no tokens it returns
// e itself; otherwise it consumes at least one token or fails.
func (n *Navigator) Lookup(ctx context.Context, e *Element, tokens []string) (*Element, []string, error) {
	if len(tokens) == 0 {
		return e, tokens, nil
	}
	n.logger.Debug("resolving path segment",
		"kind", e.Kind.String(),
		"name", e.Name,
		"remaining", strings.Join(tokens, "/"),
	)

	switch e.Kind {
	case KindRoot:
		child, err := n.lookupCollection(ctx, tokens[0])
		if err != nil {
			return nil, nil, err
		}
		return child, tokens[1:], nil

	case KindDataset, KindStudy, KindSnapshot:
		switch {
		case strings.EqualFold(tokens[0], "tables"):
			return subCollection(e, KindTables), tokens[1:], nil
		case strings.EqualFold(tokens[0], "files"):
			if e.Kind == KindStudy {
				return nil, nil, &UnsupportedError{Path: e.Path, Segment: tokens[0], Reason: "studies have no file tree"}
			}
			return subCollection(e, KindFiles), tokens[1:], nil
		}
		return nil, nil, &NotFoundError{Path: e.Path, Segment: tokens[0]}

	case KindFiles:
		child, err := n.fetchFiles(ctx, e, "/"+strings.Join(tokens, "/"), n.fileDepth)
		if err != nil {
			return nil, nil, err
		}
		return child, nil, nil

	case KindDirectory:
		if e.loaded > 0 {
			for index := range e.File.Contents {
				if e.File.Contents[index].Name() == tokens[0] {
					return fileElement(e.Collection, filesPrefix(e), &e.File.Contents[index], e.loaded-1), tokens[1:], nil
				}
			}
			return nil, nil, &NotFoundError{Path: e.Path, Segment: tokens[0]}
		}
		child, err := n.fetchFiles(ctx, e, joinPath(e.File.Path, strings.Join(tokens, "/")), n.fileDepth)
		if err != nil {
			return nil, nil, err
		}
		return child, nil, nil

	case KindTables:
		tables, err := n.service.LookupTableSchema(ctx, e.Collection.Kind, e.Collection.ID)
		if err != nil {
			if catalog.IsNotFound(err) {
				return nil, nil, &NotFoundError{Path: e.Path, Segment: tokens[0]}
			}
			return nil, nil, fmt.Errorf("listing tables of %s: %w", e.Path, err)
		}
		for index := range tables {
			if tables[index].Name == tokens[0] {
				return tableElement(e, &tables[index]), tokens[1:], nil
			}
		}
		return nil, nil, &NotFoundError{Path: e.Path, Segment: tokens[0]}

	case KindFile, KindTable:
		return nil, nil, &UnsupportedError{
			Path:    e.Path,
			Segment: tokens[0],
			Reason:  "path continues past " + e.Kind.String(),
		}
	}
	return nil, nil, fmt.Errorf("hierarchy: cannot look up under element of kind %s", e.Kind)
}

// lookupCollection searches datasets, then studies, then snapshots for
// a collection named exactly name.
func (n *Navigator) lookupCollection(ctx context.Context, name string) (*Element, error) {
	for _, kind := range catalog.Kinds {
		var found *Element
		err := n.pageCollections(ctx, kind, name, func(summary catalog.Summary) bool {
			if summary.Name == name {
				found = collectionElement(kind, summary)
				return false
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}
	return nil, &NotFoundError{Path: "/", Segment: name}
}

// Resolve normalizes logicalPath against workingPath and walks it from
// the root. The first segment that fails to resolve aborts the walk.
func (n *Navigator) Resolve(ctx context.Context, workingPath, logicalPath string) (*Element, error) {
	normalized := Normalize(workingPath, logicalPath)
	tokens := Split(normalized)
	current := n.Root()
	for len(tokens) > 0 {
		next, remaining, err := n.Lookup(ctx, current, tokens)
		if err != nil {
			return nil, err
		}
		if len(remaining) >= len(tokens) {
			return nil, errors.New("hierarchy: lookup of " + normalized + " made no progress at " + current.Path)
		}
		current, tokens = next, remaining
	}
	return current, nil
}
