package bst

import (
	"cmp"
	"fmt"
	"strings"
)

func get[K cmp.Ordered, V any](n *Node[K, V], k K) (V, bool) {
	if f := Find(n, k); f != nil {
		return f.Value, true
	}
	var zero V
	return zero, false
}

// Find returns the node holding k in the subtree at n.
func Find[K cmp.Ordered, V any](n *Node[K, V], k K) *Node[K, V] {
	for n != nil {
		switch c := cmp.Compare(k, n.Key); {
		case c < 0:
			n = n.Left
		case c > 0:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}

// Min returns the leftmost node of the subtree at n.
func Min[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node of the subtree at n.
func Max[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// IsBST reports whether every key in the subtree at n lies strictly between
// the keys of its ancestors, i.e. an in-order walk is strictly increasing.
func IsBST[K cmp.Ordered, V any](n *Node[K, V]) bool {
	var prev *Node[K, V]
	ok := true
	InOrder(n, func(cur *Node[K, V]) {
		if prev != nil && cmp.Compare(prev.Key, cur.Key) >= 0 {
			ok = false
		}
		prev = cur
	})
	return ok
}

// PreOrder visits node, left, right.
func PreOrder[K cmp.Ordered, V any](n *Node[K, V], visit func(*Node[K, V])) {
	if n == nil {
		return
	}
	visit(n)
	PreOrder(n.Left, visit)
	PreOrder(n.Right, visit)
}

// InOrder visits left, node, right; keys come out ascending.
func InOrder[K cmp.Ordered, V any](n *Node[K, V], visit func(*Node[K, V])) {
	if n == nil {
		return
	}
	InOrder(n.Left, visit)
	visit(n)
	InOrder(n.Right, visit)
}

// PostOrder visits left, right, node.
func PostOrder[K cmp.Ordered, V any](n *Node[K, V], visit func(*Node[K, V])) {
	if n == nil {
		return
	}
	PostOrder(n.Left, visit)
	PostOrder(n.Right, visit)
	visit(n)
}

// LevelOrder visits breadth-first, left to right.
func LevelOrder[K cmp.Ordered, V any](n *Node[K, V], visit func(*Node[K, V])) {
	if n == nil {
		return
	}
	queue := []*Node[K, V]{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visit(cur)
		if cur.Left != nil {
			queue = append(queue, cur.Left)
		}
		if cur.Right != nil {
			queue = append(queue, cur.Right)
		}
	}
}

// Leaves returns the childless nodes, left to right.
func Leaves[K cmp.Ordered, V any](n *Node[K, V]) []*Node[K, V] {
	var out []*Node[K, V]
	PreOrder(n, func(cur *Node[K, V]) {
		if cur.Left == nil && cur.Right == nil {
			out = append(out, cur)
		}
	})
	return out
}

// HeightOf recomputes the height of the subtree at n without using the
// cached values.
func HeightOf[K cmp.Ordered, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(HeightOf(n.Left), HeightOf(n.Right))
}

// Keys returns the keys in ascending order.
func Keys[K cmp.Ordered, V any](n *Node[K, V]) []K {
	var out []K
	InOrder(n, func(cur *Node[K, V]) { out = append(out, cur.Key) })
	return out
}

// Render draws the subtree at n sideways, one key per line, marking each
// child as L or R:
//
//	4
//	├── L:2
//	│   ├── L:1
//	│   └── R:3
//	└── R:6
func Render[K cmp.Ordered, V any](n *Node[K, V]) string {
	if n == nil {
		return "(empty)\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v\n", n.Key)
	renderChildren(&b, n, "")
	return b.String()
}

func renderChildren[K cmp.Ordered, V any](b *strings.Builder, n *Node[K, V], prefix string) {
	type labelled struct {
		side string
		node *Node[K, V]
	}
	var kids []labelled
	if n.Left != nil {
		kids = append(kids, labelled{"L", n.Left})
	}
	if n.Right != nil {
		kids = append(kids, labelled{"R", n.Right})
	}
	for i, kid := range kids {
		branch, indent := "├── ", "│   "
		if i == len(kids)-1 {
			branch, indent = "└── ", "    "
		}
		fmt.Fprintf(b, "%s%s%s:%v\n", prefix, branch, kid.side, kid.node.Key)
		renderChildren(b, kid.node, prefix+indent)
	}
}
