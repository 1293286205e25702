// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand"
	"os"
	"sort"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

// operations common to every tree variant under test
type orderedSet interface {
	Insert(key string) bool
	Remove(key string) (string, bool)
	Get(key string) (string, bool)
	IsEmpty() bool
	Count() int
	Traverse(order avl.Order) []string
	CheckOrder() error
	Print(w io.Writer) int
}

// binds a removal strategy to a BST
type strategyBST struct {
	*avl.BST[string]
	strategy avl.Strategy
}

func (s strategyBST) Remove(key string) (string, bool) {
	return s.BST.Remove(key, s.strategy)
}

var variants = []struct {
	name string
	make func() orderedSet
}{
	{"avl", func() orderedSet { return avl.NewAVL[string]() }},
	{"bst-copy", func() orderedSet { return strategyBST{avl.NewBST[string](), avl.Copy} }},
	{"bst-fusion", func() orderedSet { return strategyBST{avl.NewBST[string](), avl.Fusion} }},
}

// verify all invariants that apply to the variant
func checkTree(t *testing.T, tree orderedSet, when string) {
	t.Helper()
	err := tree.CheckOrder()
	if nil == err {
		if balanced, ok := tree.(*avl.AVL[string]); ok {
			err = balanced.CheckHeights()
			if nil == err {
				err = balanced.CheckBalance()
			}
		}
	}
	if nil != err {
		depth := tree.Print(os.Stdout)
		t.Logf("depth: %d", depth)
		t.Fatalf("%s: inconsistent tree: %s", when, err)
	}
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			doList(t, v.make, addList)
			doTraverse(t, v.make(), addList)
		})
	}
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			doList(t, v.make, addList)
			doTraverse(t, v.make(), addList)
		})
	}
}

func TestListLong(t *testing.T) {
	r := mrand.New(mrand.NewSource(4201))
	addList := make([]string, 240)
	for i := range addList {
		addList[i] = fmt.Sprintf("%04d", r.Intn(10000))
	}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			doList(t, v.make, addList)
			doTraverse(t, v.make(), addList)
		})
	}
}

// for each split point: add everything, delete a prefix, check, then
// delete the remainder and expect an empty tree
func doList(t *testing.T, makeTree func() orderedSet, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := makeTree()
		for _, key := range addList {
			tree.Insert(key)
		}
		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			if !ok || dv != key {
				t.Fatalf("delete returned: %q, %v  expected: %q", dv, ok, key)
			}
		}
		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			if !ok || dv != key {
				t.Fatalf("delete returned: %q, %v  expected: %q", dv, ok, key)
			}
		}
		if !tree.IsEmpty() {
			depth := tree.Print(os.Stdout)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree in order and check against the sorted keys
func doTraverse(t *testing.T, tree orderedSet, addList []string) {

	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	actual := tree.Traverse(avl.InOrder)
	if len(actual) != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", len(actual), len(expected))
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Fatalf("[%d]: actual: %q  expected: %q", i, actual[i], expected[i])
		}
	}
	if n := tree.Count(); n != len(expected) {
		t.Fatalf("tree count: actual: %d  expected: %d", n, len(expected))
	}

	// a second walk must give the same result in every order
	for _, order := range []avl.Order{avl.InOrder, avl.PreOrder, avl.PostOrder} {
		first := tree.Traverse(order)
		second := tree.Traverse(order)
		if fmt.Sprint(first) != fmt.Sprint(second) {
			t.Fatalf("%s order traversal changed: %v → %v", order, first, second)
		}
	}

	for index, key := range expected {
		found, ok := tree.Get(key)
		if !ok || found != key {
			t.Fatalf("[%d]: get: %q returned: %q, %v", index, key, found, ok)
		}
	}

	// delete remainder
	for _, key := range expected {
		tree.Remove(key)
		if _, ok := tree.Get(key); ok {
			t.Fatalf("key: %q still present after delete", key)
		}
	}

	if !tree.IsEmpty() {
		depth := tree.Print(os.Stdout)
		t.Logf("depth: %d", depth)
		t.Fatalf("remaining nodes")
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			randomTree(t, v.make(), 2200, 2000)
			randomTree(t, v.make(), 3400, 2760)
			randomTree(t, v.make(), 5467, 1234)
		})
	}
}

// random inserts then deletes, checked after every single mutation
// against a map holding the expected contents
func randomTree(t *testing.T, tree orderedSet, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	present := make(map[string]struct{})
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		_, exists := present[key]
		if added := tree.Insert(key); added == exists {
			t.Fatalf("insert: %q returned: %v  already present: %v", key, added, exists)
		}
		present[key] = struct{}{}
		checkTree(t, tree, "insert")
	}

	for _, key := range d {
		_, exists := present[key]
		if _, removed := tree.Remove(key); removed != exists {
			t.Fatalf("delete: %q returned: %v  present: %v", key, removed, exists)
		}
		delete(present, key)
		checkTree(t, tree, "delete")
	}

	if tree.Count() != len(present) {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(present))
	}

	// add back the test key
	const testKey = "500"
	if !tree.Insert(testKey) {
		t.Fatalf("could not insert test key: %q", testKey)
	}
	checkTree(t, tree, "test key")

	if k, ok := tree.Get(testKey); !ok || k != testKey {
		t.Fatalf("could not find test key: %q", testKey)
	}

	// delete the test key, and check it returns the correct key
	// and is no longer in the tree
	key, ok := tree.Remove(testKey)
	if !ok || key != testKey {
		t.Fatalf("delete key mismatch: actual: %q  expected: %q", key, testKey)
	}
	if _, ok := tree.Get(testKey); ok {
		t.Fatalf("test key not deleted")
	}
}
