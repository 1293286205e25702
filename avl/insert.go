// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a new key as a leaf
// returns false if the key is already present
func (tree *BST[K]) Insert(key K) bool {
	added := tree.insert(key, &tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for BST insert
func (tree *BST[K]) insert(key K, pp **node[K]) bool {
	p := *pp
	if nil == p { // insert new node
		*pp = tree.nodes.newNode(key)
		return true
	}
	switch c := tree.compare(key, p.key); {
	case c < 0:
		return tree.insert(key, &p.left)
	case c > 0:
		return tree.insert(key, &p.right)
	default:
		return false
	}
}

// Insert - add a new key and rebalance the path back to the root
// returns false if the key is already present
func (tree *AVL[K]) Insert(key K) bool {
	added := tree.insert(key, &tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for AVL insert
func (tree *AVL[K]) insert(key K, pp **node[K]) bool {
	p := *pp
	if nil == p { // insert new node
		*pp = tree.nodes.newNode(key)
		return true
	}
	c := tree.compare(key, p.key)
	if 0 == c {
		return false
	}
	if c < 0 {
		if !tree.insert(key, &p.left) {
			return false
		}
	} else {
		if !tree.insert(key, &p.right) {
			return false
		}
	}
	tree.balance(pp)
	return true
}
