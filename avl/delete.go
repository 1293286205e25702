// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Strategy - how a BST closes the gap left by a removed node
type Strategy int

// removal strategies
const (
	Copy   Strategy = iota // overwrite with the in-order predecessor
	Fusion                 // merge the two sub-trees
)

// String - name of the strategy
func (s Strategy) String() string {
	switch s {
	case Copy:
		return "copy"
	case Fusion:
		return "fusion"
	default:
		return "unknown"
	}
}

// ParseStrategy - convert a name to a removal strategy
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "copy":
		return Copy, nil
	case "fusion", "fuse":
		return Fusion, nil
	default:
		return Copy, fault.ErrInvalidStrategy
	}
}

// Remove - remove a key using the given strategy
// returns the removed key, or false if it was not in the tree
func (tree *BST[K]) Remove(key K, strategy Strategy) (K, bool) {
	var pp **node[K]
	switch strategy {
	case Copy, Fusion:
		pp = tree.find(key, &tree.root)
	}
	if nil == pp {
		var zero K
		return zero, false
	}

	removed := (*pp).key
	if Copy == strategy {
		tree.removeByCopy(pp)
	} else {
		tree.removeByFusion(pp)
	}
	tree.count -= 1
	return removed, true
}

// RemoveMin - remove the lowest key
func (tree *BST[K]) RemoveMin() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	pp := findMin(&tree.root)
	removed := (*pp).key
	tree.removeByFusion(pp) // at most one child so this is a splice
	tree.count -= 1
	return removed, true
}

// RemoveMax - remove the highest key
func (tree *BST[K]) RemoveMax() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	pp := findMax(&tree.root)
	removed := (*pp).key
	tree.removeByFusion(pp)
	tree.count -= 1
	return removed, true
}

// internal: slot holding the node for key, or nil if not present
func (tree *BST[K]) find(key K, pp **node[K]) **node[K] {
	p := *pp
	if nil == p {
		return nil
	}
	switch c := tree.compare(key, p.key); {
	case c < 0:
		return tree.find(key, &p.left)
	case c > 0:
		return tree.find(key, &p.right)
	default:
		return pp
	}
}

// delete by copy: the maximum of the left sub-tree donates its key to
// the target and is spliced out in its place. A maximum has no right
// child, so replacing it by its left child keeps the ordering.
func (tree *BST[K]) removeByCopy(pp **node[K]) {
	p := *pp
	if nil == p.left {
		*pp = p.right
		tree.nodes.freeNode(p)
		return
	}
	mm := findMax(&p.left)
	m := *mm
	p.key = m.key
	*mm = m.left
	tree.nodes.freeNode(m)
}

// delete by fusion: the right sub-tree is hung below the maximum of
// the left sub-tree and the left sub-tree takes the target's place
func (tree *BST[K]) removeByFusion(pp **node[K]) {
	p := *pp
	if nil == p.left {
		*pp = p.right
	} else {
		(*findMax(&p.left)).right = p.right
		*pp = p.left
	}
	tree.nodes.freeNode(p)
}
