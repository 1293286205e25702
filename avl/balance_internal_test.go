// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// build a node with correct height from its children
func leaf(key int) *node[int] {
	return &node[int]{key: key, height: 1}
}

func join(key int, l *node[int], r *node[int]) *node[int] {
	p := &node[int]{key: key, left: l, right: r}
	p.updateHeight()
	return p
}

func TestRotateLeft(t *testing.T) {
	tree := NewAVL[int]()
	// 1 → 2 → 3 chain with a middle left child
	tree.root = join(1, leaf(0), join(3, leaf(2), join(4, nil, leaf(5))))

	tree.rotateLeft(&tree.root)

	assert.Equal(t, 3, tree.root.key, "new root")
	assert.Equal(t, 1, tree.root.left.key, "old root moved left")
	assert.Equal(t, 2, tree.root.left.right.key, "pivot's left sub-tree reattached")
	assert.Equal(t, 2, tree.root.left.height, "lowered node height")
	assert.Equal(t, 3, tree.root.height, "new root height")
	assert.Equal(t, 1, tree.Stats().Rotations, "rotation count")
	assert.NoError(t, tree.CheckHeights(), "heights")
}

func TestRotateRight(t *testing.T) {
	tree := NewAVL[int]()
	tree.root = join(5, join(3, join(2, leaf(1), nil), leaf(4)), leaf(6))

	tree.rotateRight(&tree.root)

	assert.Equal(t, 3, tree.root.key, "new root")
	assert.Equal(t, 5, tree.root.right.key, "old root moved right")
	assert.Equal(t, 4, tree.root.right.left.key, "pivot's right sub-tree reattached")
	assert.Equal(t, 2, tree.root.right.height, "lowered node height")
	assert.Equal(t, 3, tree.root.height, "new root height")
	assert.NoError(t, tree.CheckHeights(), "heights")
}

func TestBalanceLeavesSmallFactorsAlone(t *testing.T) {
	tree := NewAVL[int]()
	tree.root = join(2, leaf(1), nil)
	tree.root.height = 7 // stale height must be refreshed

	tree.balance(&tree.root)

	assert.Equal(t, 2, tree.root.key, "root moved")
	assert.Equal(t, 2, tree.root.height, "height not refreshed")
	assert.Equal(t, 0, tree.rotations, "unexpected rotation")
}

func TestBalanceDoubleRotation(t *testing.T) {
	tree := NewAVL[int]()
	// left child is right heavy: needs left-right rotation
	tree.root = join(3, join(1, nil, leaf(2)), nil)

	tree.balance(&tree.root)

	assert.Equal(t, 2, tree.root.key, "root")
	assert.Equal(t, 1, tree.root.left.key, "left")
	assert.Equal(t, 3, tree.root.right.key, "right")
	assert.Equal(t, 2, tree.rotations, "rotation count")
	assert.NoError(t, tree.CheckBalance(), "balance")
}

func TestPullMaxDetachesNode(t *testing.T) {
	tree := NewAVL[int]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7, 8} {
		tree.Insert(k)
	}

	m := tree.pullMax(&tree.root)

	assert.Equal(t, 8, m.key, "wrong node pulled")
	assert.Nil(t, m.left, "left still attached")
	assert.Nil(t, m.right, "right still attached")
	assert.False(t, m.free, "pulled node must not be released")

	_, found := tree.Get(8)
	assert.False(t, found, "pulled key still reachable")
	assert.NoError(t, tree.CheckHeights(), "heights")
	assert.NoError(t, tree.CheckBalance(), "balance")
}

func TestPullMaxPromotesLeftChild(t *testing.T) {
	tree := NewAVL[int]()
	tree.root = join(5, leaf(3), join(8, leaf(7), nil))

	m := tree.pullMax(&tree.root)

	assert.Equal(t, 8, m.key, "wrong node pulled")
	assert.Equal(t, 7, tree.root.right.key, "left child not promoted")
	assert.Equal(t, 2, tree.root.height, "root height")
}

func TestAllocatorReuse(t *testing.T) {
	a := allocator[string]{}
	p := a.newNode("one")
	assert.Equal(t, 1, a.totalNodes, "total")

	a.freeNode(p)
	assert.True(t, p.free, "not marked free")
	assert.Equal(t, "", p.key, "key not cleared")
	assert.Equal(t, 1, a.freeNodes, "free count")

	q := a.newNode("two")
	assert.Same(t, p, q, "node not reused")
	assert.False(t, q.free, "still marked free")
	assert.Nil(t, q.left, "free list pointer not cleared")
	assert.Equal(t, 1, q.height, "height")
	assert.Equal(t, 0, a.freeNodes, "free count")
	assert.Equal(t, 1, a.totalNodes, "total")
}

func TestAllocatorDoubleRelease(t *testing.T) {
	a := allocator[int]{}
	p := a.newNode(1)
	a.freeNode(p)
	assert.Panics(t, func() { a.freeNode(p) }, "double release not detected")
}
