// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// state shared by both tree variants
type core[K any] struct {
	root      *node[K]
	count     int
	compare   func(a K, b K) int
	nodes     allocator[K]
	rotations int
}

// BST - unbalanced binary search tree
type BST[K any] struct {
	core[K]
}

// AVL - height balanced binary search tree
type AVL[K any] struct {
	core[K]
}

// NewBST - create an empty BST using the natural ordering of K
func NewBST[K constraints.Ordered]() *BST[K] {
	return NewBSTFunc(cmp.Compare[K])
}

// NewBSTFunc - create an empty BST ordered by compare, which must
// return a negative number, zero or a positive number when a is
// less than, equal to or greater than b
func NewBSTFunc[K any](compare func(a K, b K) int) *BST[K] {
	return &BST[K]{
		core: core[K]{
			compare: compare,
		},
	}
}

// NewAVL - create an empty AVL tree using the natural ordering of K
func NewAVL[K constraints.Ordered]() *AVL[K] {
	return NewAVLFunc(cmp.Compare[K])
}

// NewAVLFunc - create an empty AVL tree ordered by compare
func NewAVLFunc[K any](compare func(a K, b K) int) *AVL[K] {
	return &AVL[K]{
		core: core[K]{
			compare: compare,
		},
	}
}

// IsEmpty - true if tree contains no data
func (tree *core[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *core[K]) Count() int {
	return tree.count
}

// Stats - allocation figures
func (tree *core[K]) Stats() Stats {
	return Stats{
		Total:     tree.nodes.totalNodes,
		Free:      tree.nodes.freeNodes,
		Live:      tree.count,
		Rotations: tree.rotations,
	}
}

// Clear - release every node, children before their parent, and
// leave the tree empty
func (tree *core[K]) Clear() {
	tree.destroy(tree.root)
	tree.root = nil
	tree.count = 0
}

func (tree *core[K]) destroy(p *node[K]) {
	if nil == p {
		return
	}
	tree.destroy(p.left)
	tree.destroy(p.right)
	tree.nodes.freeNode(p)
}

// Height - length of the longest root to leaf path, computed by a full
// walk since a BST does not store heights
func (tree *BST[K]) Height() int {
	return depth(tree.root)
}

func depth[K any](p *node[K]) int {
	if nil == p {
		return 0
	}
	return 1 + max(depth(p.left), depth(p.right))
}

// Height - stored height of the root
func (tree *AVL[K]) Height() int {
	return tree.root.getHeight()
}
