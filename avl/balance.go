// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree
// returns the removed key, or false if it was not in the tree
//
// removal is always by copy: fusion would stack a whole sub-tree under
// one leaf and the heights along that path would have to be rebuilt
func (tree *AVL[K]) Remove(key K) (K, bool) {
	removed, ok := tree.remove(key, &tree.root)
	if ok {
		tree.count -= 1
	}
	return removed, ok
}

// RemoveMin - remove the lowest key
func (tree *AVL[K]) RemoveMin() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.release(tree.pullMin(&tree.root)), true
}

// RemoveMax - remove the highest key
func (tree *AVL[K]) RemoveMax() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.release(tree.pullMax(&tree.root)), true
}

// internal: free a detached node and return its key
func (tree *AVL[K]) release(p *node[K]) K {
	key := p.key
	tree.nodes.freeNode(p)
	tree.count -= 1
	return key
}

// internal delete routine
func (tree *AVL[K]) remove(key K, pp **node[K]) (K, bool) {
	p := *pp
	if nil == p { // key not in tree
		var zero K
		return zero, false
	}

	var removed K
	ok := false
	switch c := tree.compare(key, p.key); {
	case c < 0:
		removed, ok = tree.remove(key, &p.left)
	case c > 0:
		removed, ok = tree.remove(key, &p.right)
	default: // found: delete p
		removed, ok = p.key, true
		if nil == p.left {
			// only the right sub-tree remains, it is already
			// balanced and the parent refreshes its own height
			*pp = p.right
			tree.nodes.freeNode(p)
			return removed, true
		}
		m := tree.pullMax(&p.left)
		p.key = m.key
		tree.nodes.freeNode(m)
	}
	if !ok {
		return removed, false
	}
	tree.balance(pp)
	return removed, true
}

// detach the highest node of a non-empty sub-tree, rebalancing every
// node on the path to it
func (tree *AVL[K]) pullMax(pp **node[K]) *node[K] {
	p := *pp
	if nil != p.right {
		m := tree.pullMax(&p.right)
		tree.balance(pp)
		return m
	}
	*pp = p.left
	p.left = nil
	return p
}

// detach the lowest node of a non-empty sub-tree
func (tree *AVL[K]) pullMin(pp **node[K]) *node[K] {
	p := *pp
	if nil != p.left {
		m := tree.pullMin(&p.left)
		tree.balance(pp)
		return m
	}
	*pp = p.right
	p.right = nil
	return p
}

// refresh the height of the node in a slot and rotate if it is out of
// balance; the children must already be balanced with correct heights
func (tree *AVL[K]) balance(pp **node[K]) {
	p := *pp
	p.updateHeight()
	switch p.factor() {
	case +2: // left heavy
		if p.left.factor() < 0 {
			tree.rotateLeft(&p.left)
		}
		tree.rotateRight(pp)
	case -2: // right heavy
		if p.right.factor() > 0 {
			tree.rotateRight(&p.right)
		}
		tree.rotateLeft(pp)
	}
}

// the right child takes the place of the node in the slot
func (tree *AVL[K]) rotateLeft(pp **node[K]) {
	p := *pp
	pivot := p.right
	p.right = pivot.left
	pivot.left = p
	p.updateHeight()
	pivot.updateHeight()
	*pp = pivot
	tree.rotations += 1
}

// the left child takes the place of the node in the slot
func (tree *AVL[K]) rotateRight(pp **node[K]) {
	p := *pp
	pivot := p.left
	p.left = pivot.right
	pivot.right = p
	p.updateHeight()
	pivot.updateHeight()
	*pp = pivot
	tree.rotations += 1
}

// height of a possibly empty sub-tree
func (p *node[K]) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

func (p *node[K]) updateHeight() {
	p.height = 1 + max(p.left.getHeight(), p.right.getHeight())
}

// balance factor: left height minus right height
func (p *node[K]) factor() int {
	return p.left.getHeight() - p.right.getHeight()
}
