package bst

import "cmp"

// AVL is a height-balanced binary search tree.
type AVL[K cmp.Ordered, V any] struct {
	root  *Node[K, V]
	count int
}

// NewAVL returns an empty tree.
func NewAVL[K cmp.Ordered, V any]() *AVL[K, V] { return &AVL[K, V]{} }

func (t *AVL[K, V]) Len() int          { return t.count }
func (t *AVL[K, V]) IsEmpty() bool     { return t.count == 0 }
func (t *AVL[K, V]) Root() *Node[K, V] { return t.root }
func (t *AVL[K, V]) Height() int       { return t.root.Height() }
func (t *AVL[K, V]) Get(k K) (V, bool) { return get(t.root, k) }
func (t *AVL[K, V]) String() string    { return Render(t.root) }

func (t *AVL[K, V]) Put(k K, v V) {
	t.root = t.put(t.root, k, v)
	t.root.Parent = nil
}

func (t *AVL[K, V]) put(n *Node[K, V], k K, v V) *Node[K, V] {
	if n == nil {
		t.count++
		return &Node[K, V]{Key: k, Value: v, height: 1}
	}
	switch c := cmp.Compare(k, n.Key); {
	case c < 0:
		n.setLeft(t.put(n.Left, k, v))
	case c > 0:
		n.setRight(t.put(n.Right, k, v))
	default:
		n.Value = v
		return n
	}
	return rebalance(n)
}

func (t *AVL[K, V]) Delete(k K) (V, bool) {
	v, ok := get(t.root, k)
	if !ok {
		return v, false
	}
	t.root = t.delete(t.root, k)
	if t.root != nil {
		t.root.Parent = nil
	}
	t.count--
	return v, true
}

func (t *AVL[K, V]) delete(n *Node[K, V], k K) *Node[K, V] {
	if n == nil {
		return nil
	}
	switch c := cmp.Compare(k, n.Key); {
	case c < 0:
		n.setLeft(t.delete(n.Left, k))
	case c > 0:
		n.setRight(t.delete(n.Right, k))
	default:
		if n.Left == nil || n.Right == nil {
			child := n.Left
			if child == nil {
				child = n.Right
			}
			if child != nil {
				child.Parent = n.Parent
			}
			return child
		}
		succ := Min(n.Right)
		n.Key, n.Value = succ.Key, succ.Value
		n.setRight(t.delete(n.Right, succ.Key))
	}
	return rebalance(n)
}

// rebalance refreshes n's height and applies the rotation its balance factor
// calls for, returning the new subtree root.
//
//	LL: balance  2, left  >= 0   rotate right
//	LR: balance  2, left  <  0   rotate left child left, then right
//	RR: balance -2, right <= 0   rotate left
//	RL: balance -2, right >  0   rotate right child right, then left
func rebalance[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	n.refreshHeight()
	switch b := n.balance(); {
	case b > 1:
		if n.Left.balance() < 0 {
			n.setLeft(rotateLeft(n.Left))
		}
		return rotateRight(n)
	case b < -1:
		if n.Right.balance() > 0 {
			n.setRight(rotateRight(n.Right))
		}
		return rotateLeft(n)
	}
	return n
}

//	  n            r
//	   \          /
//	    r   ->   n
//	   /          \
//	  rl           rl
func rotateLeft[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	r := n.Right
	r.Parent = n.Parent
	n.setRight(r.Left)
	r.setLeft(n)
	n.refreshHeight()
	r.refreshHeight()
	return r
}

//	    n        l
//	   /          \
//	  l     ->     n
//	   \          /
//	    lr       lr
func rotateRight[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	l := n.Left
	l.Parent = n.Parent
	n.setLeft(l.Right)
	l.setRight(n)
	n.refreshHeight()
	l.refreshHeight()
	return l
}

var _ Tree[int, int] = (*AVL[int, int])(nil)
