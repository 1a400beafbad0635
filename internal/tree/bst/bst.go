package bst

import "cmp"

// Tree is the contract shared by Basic and AVL.
type Tree[K cmp.Ordered, V any] interface {
	Len() int
	IsEmpty() bool
	Height() int
	Root() *Node[K, V]
	// Put inserts k or replaces the value already stored under it.
	Put(k K, v V)
	Get(k K) (V, bool)
	// Delete removes k and returns the value it held.
	Delete(k K) (V, bool)
}

// Node is a tree node. Heights count nodes, so a leaf has height 1.
type Node[K cmp.Ordered, V any] struct {
	Key    K
	Value  V
	Left   *Node[K, V]
	Right  *Node[K, V]
	Parent *Node[K, V]

	height int
}

// Height returns the cached height of the subtree rooted at n; 0 for nil.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *Node[K, V]) setLeft(l *Node[K, V]) {
	n.Left = l
	if l != nil {
		l.Parent = n
	}
}

func (n *Node[K, V]) setRight(r *Node[K, V]) {
	n.Right = r
	if r != nil {
		r.Parent = n
	}
}

func (n *Node[K, V]) refreshHeight() {
	n.height = 1 + max(n.Left.Height(), n.Right.Height())
}

// balance is left height minus right height.
func (n *Node[K, V]) balance() int {
	if n == nil {
		return 0
	}
	return n.Left.Height() - n.Right.Height()
}
