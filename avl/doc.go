// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - ordered key containers: a plain binary search tree
// (BST) and a height balanced AVL tree built on the same node layout
// and sharing the same read operations
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are unique, inserting a key that is already present is
// rejected and leaves the tree unchanged.  The BST can remove a node
// either by copying its in-order predecessor into it or by fusing its
// two sub-trees together.  The AVL tree always removes by copy and
// repairs heights and balance on the way back up to the root.
//
// Every mutation is a single recursion: a top-down search followed by
// a bottom-up repair phase as the recursion unwinds.
package avl
