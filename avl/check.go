// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckOrder - verify that every key lies strictly between the keys
// of the ancestors that bound it and that the node count is correct
func (tree *core[K]) CheckOrder() error {
	n, err := tree.checkOrder(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, returns the size of the sub-tree
func (tree *core[K]) checkOrder(p *node[K], low *K, high *K) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && tree.compare(*low, p.key) >= 0 {
		return 0, fault.ErrOrderViolation
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return 0, fault.ErrOrderViolation
	}
	nl, err := tree.checkOrder(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkOrder(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}
	return 1 + nl + nr, nil
}

// CheckHeights - verify every stored height against its sub-trees
func (tree *AVL[K]) CheckHeights() error {
	_, err := checkHeights(tree.root)
	return err
}

func checkHeights[K any](p *node[K]) (int, error) {
	if nil == p {
		return 0, nil
	}
	hl, err := checkHeights(p.left)
	if nil != err {
		return 0, err
	}
	hr, err := checkHeights(p.right)
	if nil != err {
		return 0, err
	}
	h := 1 + max(hl, hr)
	if h != p.height {
		return 0, fault.ErrHeightMismatch
	}
	return h, nil
}

// CheckBalance - verify that no balance factor exceeds one
func (tree *AVL[K]) CheckBalance() error {
	return checkBalance(tree.root)
}

func checkBalance[K any](p *node[K]) error {
	if nil == p {
		return nil
	}
	if f := p.factor(); f < -1 || f > 1 {
		return fault.ErrUnbalanced
	}
	if err := checkBalance(p.left); nil != err {
		return err
	}
	return checkBalance(p.right)
}
