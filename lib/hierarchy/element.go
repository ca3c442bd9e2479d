// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package hierarchy

import (
	"fmt"
	"time"

	"github.com/catalog-foundation/catalog/lib/catalog"
)

// Kind identifies the variant of an [Element].
type Kind int

const (
	KindRoot Kind = iota
	KindDataset
	KindStudy
	KindSnapshot
	KindFiles
	KindTables
	KindDirectory
	KindFile
	KindTable
)

var kindNames = [...]string{
	KindRoot:      "root",
	KindDataset:   "dataset",
	KindStudy:     "study",
	KindSnapshot:  "snapshot",
	KindFiles:     "files",
	KindTables:    "tables",
	KindDirectory: "directory",
	KindFile:      "file",
	KindTable:     "table",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// kindOf maps a remote collection kind to its element kind.
func kindOf(kind catalog.Kind) Kind {
	switch kind {
	case catalog.KindStudy:
		return KindStudy
	case catalog.KindSnapshot:
		return KindSnapshot
	default:
		return KindDataset
	}
}

// Collection identifies the dataset, study, or snapshot an element
// belongs to.
type Collection struct {
	Kind catalog.Kind
	ID   string
	Name string
}

// Element is one node of the catalog tree. Every kind carries the
// identity fields. Collection is set for every kind below the root,
// File for directories and files, Table for tables.
type Element struct {
	Kind        Kind
	Name        string
	Created     time.Time
	ID          string
	Description string

	// Path is the normalized absolute logical path of the element.
	Path string

	Collection *Collection
	File       *catalog.FileNode
	Table      *catalog.Table

	// loaded is how many levels of File.Contents the remote lookup
	// populated. Zero means the children have not been fetched.
	loaded int
}

// IsLeaf reports whether the element can have no children.
func (e *Element) IsLeaf() bool {
	return e.Kind == KindFile || e.Kind == KindTable
}

// IsCollection reports whether the element is a dataset, study, or
// snapshot.
func (e *Element) IsCollection() bool {
	switch e.Kind {
	case KindDataset, KindStudy, KindSnapshot:
		return true
	}
	return false
}

// Row is the listing view of an element.
type Row struct {
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Path        string    `json:"path"`
}

// Row returns the listing view of the element.
func (e *Element) Row() Row {
	return Row{
		Type:        e.Kind.String(),
		Name:        e.Name,
		Created:     e.Created,
		ID:          e.ID,
		Description: e.Description,
		Path:        e.Path,
	}
}

func rootElement() *Element {
	return &Element{Kind: KindRoot, Name: "/", Path: "/"}
}

func collectionElement(kind catalog.Kind, summary catalog.Summary) *Element {
	return &Element{
		Kind:        kindOf(kind),
		Name:        summary.Name,
		Created:     summary.Created,
		ID:          summary.ID,
		Description: summary.Description,
		Path:        joinPath("/", summary.Name),
		Collection:  &Collection{Kind: kind, ID: summary.ID, Name: summary.Name},
	}
}

// subCollection builds the files or tables element of a collection.
func subCollection(parent *Element, kind Kind) *Element {
	return &Element{
		Kind:       kind,
		Name:       kind.String(),
		Created:    parent.Created,
		ID:         parent.ID,
		Path:       joinPath(parent.Path, kind.String()),
		Collection: parent.Collection,
	}
}

// fileElement wraps a remote file node. logicalPrefix is the path of
// the collection's files element.
func fileElement(collection *Collection, logicalPrefix string, node *catalog.FileNode, loaded int) *Element {
	kind := KindFile
	if node.IsDirectory() {
		kind = KindDirectory
	}
	return &Element{
		Kind:        kind,
		Name:        node.Name(),
		Created:     node.Created,
		ID:          node.FileID,
		Description: node.Description,
		Path:        joinPath(logicalPrefix, node.Path),
		Collection:  collection,
		File:        node,
		loaded:      loaded,
	}
}

func tableElement(parent *Element, table *catalog.Table) *Element {
	return &Element{
		Kind:       KindTable,
		Name:       table.Name,
		Created:    parent.Created,
		Path:       joinPath(parent.Path, table.Name),
		Collection: parent.Collection,
		Table:      table,
	}
}

// filesPrefix returns the logical path of the files element that owns
// a directory or file.
func filesPrefix(e *Element) string {
	return joinPath("/", e.Collection.Name, "files")
}
