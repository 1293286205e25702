// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// a node in the tree
type node[K any] struct {
	left   *node[K] // left sub-tree
	right  *node[K] // right sub-tree
	key    K        // key part for ordering
	height int      // 1 + height of taller sub-tree, only maintained by AVL
	free   bool     // true while held in the allocator pool
}

// Stats - node accounting for a single tree
type Stats struct {
	Total     int // nodes ever created
	Free      int // released nodes waiting to be reused
	Live      int // nodes currently in the tree
	Rotations int // single rotations performed (AVL only)
}

// per-tree node allocator, reclaimed nodes are chained through their
// left pointer
type allocator[K any] struct {
	pool       *node[K] // linked list of reclaimed nodes
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator[K]) newNode(key K) *node[K] {
	if nil == a.pool {
		if 0 != a.freeNodes {
			fault.Panicf("avl: pool corrupt: free count: %d", a.freeNodes)
		}
		a.totalNodes += 1
		return &node[K]{
			key:    key,
			height: 1,
		}
	}
	p := a.pool
	a.pool = p.left
	a.freeNodes -= 1

	p.left = nil // ensure freelist pointer is cleared
	p.key = key
	p.height = 1
	p.free = false
	return p
}

// reclaim a node and keep it in the pool
func (a *allocator[K]) freeNode(p *node[K]) {
	if p.free {
		fault.Panicf("avl: %s", fault.ErrNodeReleased)
	}

	var zero K
	p.key = zero
	p.right = nil
	p.height = 0
	p.free = true

	p.left = a.pool // use as free list pointer
	a.pool = p
	a.freeNodes += 1
}
