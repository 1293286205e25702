// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree, right
// sub-trees above their parent; returns the depth of the tree
func (tree *BST[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root, false)
}

// Print - as BST.Print with each node's height and balance factor
func (tree *AVL[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root, true)
}

// internal print - returns the maximum depth of the tree
func printTree[K any](w io.Writer, p *node[K], prefix string, br branch, detail bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, detail)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if detail {
		fmt.Fprintf(w, "%v (h=%d, b=%+d)\n", p.key, p.height, p.factor())
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, detail)
	}
	return 1 + max(rd, ld)
}
