// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package hierarchy

import (
	"context"
	"math"
)

// Unbounded is the Tree depth that never stops descending.
const Unbounded = math.MaxInt

// List returns the rows to show for e: its children, or e itself when
// it is a leaf.
func (n *Navigator) List(ctx context.Context, e *Element) ([]*Element, error) {
	if e.IsLeaf() {
		return []*Element{e}, nil
	}
	return n.Enumerate(ctx, e)
}

// ListRecursive visits e and then every non-leaf descendant in
// depth-first pre-order. visit receives each container with its
// children; an error from visit stops the walk.
func (n *Navigator) ListRecursive(ctx context.Context, e *Element, visit func(parent *Element, children []*Element) error) error {
	if e.IsLeaf() {
		return visit(e, []*Element{e})
	}
	children, err := n.Enumerate(ctx, e)
	if err != nil {
		return err
	}
	if err := visit(e, children); err != nil {
		return err
	}
	for _, child := range children {
		if child.IsLeaf() {
			continue
		}
		if err := n.ListRecursive(ctx, child, visit); err != nil {
			return err
		}
	}
	return nil
}

// Tree visits e at depth 0 and its descendants down to maxDepth in
// depth-first pre-order. A maxDepth of zero visits only e.
func (n *Navigator) Tree(ctx context.Context, e *Element, maxDepth int, visit func(depth int, e *Element) error) error {
	return n.tree(ctx, e, 0, maxDepth, visit)
}

func (n *Navigator) tree(ctx context.Context, e *Element, depth, maxDepth int, visit func(int, *Element) error) error {
	if err := visit(depth, e); err != nil {
		return err
	}
	if depth >= maxDepth || e.IsLeaf() {
		return nil
	}
	children, err := n.Enumerate(ctx, e)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := n.tree(ctx, child, depth+1, maxDepth, visit); err != nil {
			return err
		}
	}
	return nil
}
