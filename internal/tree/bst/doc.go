// Package bst provides binary search trees keyed by ordered keys.
//
// Basic is a plain, unbalanced tree. AVL rebalances after every insert and
// delete so that the heights of any node's subtrees differ by at most one.
// Both expose their nodes, which the traversal and rendering helpers in this
// package operate on. Trees are not safe for concurrent use.
package bst
