// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package hierarchy

import (
	"context"
	"fmt"

	"github.com/catalog-foundation/catalog/lib/catalog"
)

// Description is the detailed view of one element.
type Description struct {
	Element *Element `json:"-"`
	Row     Row      `json:"element"`

	// Detail is the remote schema of a collection.
	Detail *catalog.Detail `json:"detail,omitempty"`

	// File is set for files and directories.
	File *catalog.FileNode `json:"file,omitempty"`

	// Table is set for tables.
	Table *catalog.Table `json:"table,omitempty"`

	// Children describes the children of container elements one level
	// deep. Their own Children are never populated.
	Children []Description `json:"children,omitempty"`
}

// describesChildren reports whether Describe expands the children of
// an element of kind k.
func describesChildren(k Kind) bool {
	switch k {
	case KindDataset, KindStudy, KindSnapshot, KindTables:
		return true
	}
	return false
}

// Describe returns the identity and detail of e. Collections and the
// tables element also describe their children inline.
func (n *Navigator) Describe(ctx context.Context, e *Element) (*Description, error) {
	description, err := n.describeOne(ctx, e)
	if err != nil {
		return nil, err
	}
	if !describesChildren(e.Kind) {
		return description, nil
	}
	children, err := n.Enumerate(ctx, e)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		childDescription, err := n.describeOne(ctx, child)
		if err != nil {
			return nil, err
		}
		description.Children = append(description.Children, *childDescription)
	}
	return description, nil
}

func (n *Navigator) describeOne(ctx context.Context, e *Element) (*Description, error) {
	description := &Description{Element: e, Row: e.Row()}
	switch e.Kind {
	case KindDataset, KindStudy, KindSnapshot:
		detail, err := n.service.RetrieveDetail(ctx, e.Collection.Kind, e.Collection.ID)
		if err != nil {
			if catalog.IsNotFound(err) {
				return nil, &NotFoundError{Path: "/", Segment: e.Name}
			}
			return nil, fmt.Errorf("describing %s: %w", e.Path, err)
		}
		description.Detail = detail
	case KindDirectory, KindFile:
		description.File = e.File
	case KindTable:
		description.Table = e.Table
	}
	return description, nil
}
