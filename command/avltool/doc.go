// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - exercise a BST or AVL tree from a configuration script
// and command-line operations
//
// Operations are evaluated left to right, first those from the
// configuration file (insert list, remove list, then the operations
// list) followed by any on the command line:
//
//   insert KEY     remove KEY     get KEY
//   min            max            remove-min     remove-max
//   list [ORDER]   print          check          stats
//   clear
//
// A sample configuration:
//
//   local M = {}
//   M.data_directory = "."
//   M.tree = "avl"          -- or "bst"
//   M.removal = "copy"      -- bst only: "copy" or "fusion"
//   M.keys = "int"          -- or "string"
//   M.order = "in"          -- default order for list
//   M.insert = { "5", "3", "8", "1", "4", "7", "9" }
//   M.remove = { "5" }
//   M.operations = { "list", "pre", "print" }
//   M.logging = {
//       directory = "log",
//       file = "avltool.log",
//       size = 1048576,
//       count = 10,
//       levels = { DEFAULT = "info" },
//   }
//   return M
package main
