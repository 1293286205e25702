// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - find the stored key equal to key
func (tree *core[K]) Get(key K) (K, bool) {
	return tree.get(key, tree.root)
}

func (tree *core[K]) get(key K, p *node[K]) (K, bool) {
	if nil == p {
		var zero K
		return zero, false
	}
	switch c := tree.compare(key, p.key); {
	case c < 0:
		return tree.get(key, p.left)
	case c > 0:
		return tree.get(key, p.right)
	default:
		return p.key, true
	}
}
