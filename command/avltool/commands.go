// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// operations common to both tree types once the BST removal
// strategy is fixed
type container[K any] interface {
	Insert(key K) bool
	Remove(key K) (K, bool)
	RemoveMin() (K, bool)
	RemoveMax() (K, bool)
	Get(key K) (K, bool)
	Min() (K, bool)
	Max() (K, bool)
	Clear()
	Count() int
	Height() int
	Traverse(order avl.Order) []K
	Print(w io.Writer) int
	Stats() avl.Stats
	CheckOrder() error
}

// extra checks only a balanced tree can satisfy
type balanceChecker interface {
	CheckHeights() error
	CheckBalance() error
}

// binds a removal strategy to a plain BST
type bstContainer[K any] struct {
	*avl.BST[K]
	strategy avl.Strategy
}

func (b bstContainer[K]) Remove(key K) (K, bool) {
	return b.BST.Remove(key, b.strategy)
}

type interpreter interface {
	run(operations []string) error
}

type runner[K constraints.Ordered] struct {
	tree  container[K]
	parse func(s string) (K, error)
	order avl.Order
	out   io.Writer
	log   *logger.L
}

// create the interpreter selected by an already checked configuration
func newInterpreter(options *Configuration, out io.Writer, log *logger.L) (interpreter, error) {
	strategy, err := avl.ParseStrategy(options.Removal)
	if nil != err {
		return nil, err
	}
	order, err := avl.ParseOrder(options.Order)
	if nil != err {
		return nil, err
	}

	switch strings.ToLower(options.Keys) {
	case "int":
		return newRunner(options.Tree, strategy, order, parseInt, out, log)
	case "string":
		return newRunner(options.Tree, strategy, order, parseString, out, log)
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

func newRunner[K constraints.Ordered](treeType string, strategy avl.Strategy, order avl.Order, parse func(string) (K, error), out io.Writer, log *logger.L) (*runner[K], error) {
	var tree container[K]
	switch strings.ToLower(treeType) {
	case "avl":
		tree = avl.NewAVL[K]()
	case "bst":
		tree = bstContainer[K]{
			BST:      avl.NewBST[K](),
			strategy: strategy,
		}
	default:
		return nil, fault.ErrInvalidTreeType
	}

	log.Infof("tree: %s  removal: %s  order: %s", treeType, strategy, order)

	return &runner[K]{
		tree:  tree,
		parse: parse,
		order: order,
		out:   out,
		log:   log,
	}, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, errors.Wrapf(fault.ErrInvalidKey, "key: %q", s)
	}
	return n, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

// evaluate the operations left to right, stopping at the first error
func (r *runner[K]) run(operations []string) error {
	for len(operations) > 0 {
		operation := operations[0]
		operations = operations[1:]

		r.log.Debugf("operation: %s", operation)

		switch operation {

		case "insert", "remove", "get":
			if 0 == len(operations) {
				return errors.Wrapf(fault.ErrMissingArgument, "operation: %s", operation)
			}
			key, err := r.parse(operations[0])
			if nil != err {
				return err
			}
			operations = operations[1:]
			r.keyed(operation, key)

		case "min", "max", "remove-min", "remove-max":
			r.extreme(operation)

		case "clear":
			n := r.tree.Count()
			r.tree.Clear()
			fmt.Fprintf(r.out, "clear: %d\n", n)

		case "list":
			order := r.order
			if len(operations) > 0 {
				if o, err := avl.ParseOrder(operations[0]); nil == err {
					order = o
					operations = operations[1:]
				}
			}
			r.list(order)

		case "print":
			depth := r.tree.Print(r.out)
			fmt.Fprintf(r.out, "depth: %d\n", depth)

		case "check":
			if err := r.check(); nil != err {
				fmt.Fprintf(r.out, "check: %s\n", err)
				return err
			}
			fmt.Fprintf(r.out, "check: ok\n")

		case "stats":
			s := r.tree.Stats()
			fmt.Fprintf(r.out, "stats: count=%d height=%d total=%d free=%d live=%d rotations=%d\n",
				r.tree.Count(), r.tree.Height(), s.Total, s.Free, s.Live, s.Rotations)

		default:
			return errors.Wrapf(fault.ErrUnknownOperation, "operation: %q", operation)
		}
	}
	return nil
}

func (r *runner[K]) keyed(operation string, key K) {
	result := "not found"
	switch operation {
	case "insert":
		if r.tree.Insert(key) {
			result = "added"
		} else {
			result = "exists"
		}
	case "remove":
		if _, ok := r.tree.Remove(key); ok {
			result = "removed"
		}
	case "get":
		if _, ok := r.tree.Get(key); ok {
			result = "found"
		}
	}
	r.log.Debugf("%s %v: %s", operation, key, result)
	fmt.Fprintf(r.out, "%s %v: %s\n", operation, key, result)
}

func (r *runner[K]) extreme(operation string) {
	var key K
	var ok bool
	switch operation {
	case "min":
		key, ok = r.tree.Min()
	case "max":
		key, ok = r.tree.Max()
	case "remove-min":
		key, ok = r.tree.RemoveMin()
	case "remove-max":
		key, ok = r.tree.RemoveMax()
	}
	if !ok {
		fmt.Fprintf(r.out, "%s: empty\n", operation)
		return
	}
	fmt.Fprintf(r.out, "%s: %v\n", operation, key)
}

func (r *runner[K]) list(order avl.Order) {
	keys := r.tree.Traverse(order)
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprint(k)
	}
	fmt.Fprintf(r.out, "%s: %s\n", order, strings.Join(s, " "))
}

func (r *runner[K]) check() error {
	if err := r.tree.CheckOrder(); nil != err {
		return err
	}
	if b, ok := r.tree.(balanceChecker); ok {
		if err := b.CheckHeights(); nil != err {
			return err
		}
		return b.CheckBalance()
	}
	return nil
}
