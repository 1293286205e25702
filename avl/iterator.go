// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Order - sequence in which a traversal visits the nodes
type Order int

// traversal orders
const (
	InOrder   Order = iota // left, node, right: ascending keys
	PreOrder               // node, left, right
	PostOrder              // left, right, node
)

// String - name of the order
func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	default:
		return "unknown"
	}
}

// ParseOrder - convert a name to a traversal order
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "in", "inorder", "in-order":
		return InOrder, nil
	case "pre", "preorder", "pre-order":
		return PreOrder, nil
	case "post", "postorder", "post-order":
		return PostOrder, nil
	default:
		return InOrder, fault.ErrInvalidOrder
	}
}

// Traverse - all keys in the requested order
func (tree *core[K]) Traverse(order Order) []K {
	keys := make([]K, 0, tree.count)
	tree.Walk(order, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Walk - call visit for each key in the requested order until it
// returns false; the tree must not be modified during the walk
func (tree *core[K]) Walk(order Order, visit func(key K) bool) {
	switch order {
	case InOrder:
		inorder(tree.root, visit)
	case PreOrder:
		preorder(tree.root, visit)
	case PostOrder:
		postorder(tree.root, visit)
	}
}

func inorder[K any](p *node[K], visit func(K) bool) bool {
	if nil == p {
		return true
	}
	return inorder(p.left, visit) && visit(p.key) && inorder(p.right, visit)
}

func preorder[K any](p *node[K], visit func(K) bool) bool {
	if nil == p {
		return true
	}
	return visit(p.key) && preorder(p.left, visit) && preorder(p.right, visit)
}

func postorder[K any](p *node[K], visit func(K) bool) bool {
	if nil == p {
		return true
	}
	return postorder(p.left, visit) && postorder(p.right, visit) && visit(p.key)
}
