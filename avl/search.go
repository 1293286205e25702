// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Min - return the lowest key
func (tree *core[K]) Min() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return (*findMin(&tree.root)).key, true
}

// Max - return the highest key
func (tree *core[K]) Max() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return (*findMax(&tree.root)).key, true
}

// internal: slot holding the lowest node of a non-empty sub-tree
func findMin[K any](pp **node[K]) **node[K] {
	for nil != (*pp).left {
		pp = &(*pp).left
	}
	return pp
}

// internal: slot holding the highest node of a non-empty sub-tree
func findMax[K any](pp **node[K]) **node[K] {
	for nil != (*pp).right {
		pp = &(*pp).right
	}
	return pp
}
