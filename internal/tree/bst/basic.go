package bst

import "cmp"

// Basic is an unbalanced binary search tree.
type Basic[K cmp.Ordered, V any] struct {
	root  *Node[K, V]
	count int
}

// NewBasic returns an empty tree.
func NewBasic[K cmp.Ordered, V any]() *Basic[K, V] { return &Basic[K, V]{} }

func (t *Basic[K, V]) Len() int          { return t.count }
func (t *Basic[K, V]) IsEmpty() bool     { return t.count == 0 }
func (t *Basic[K, V]) Root() *Node[K, V] { return t.root }
func (t *Basic[K, V]) Height() int       { return t.root.Height() }
func (t *Basic[K, V]) Get(k K) (V, bool) { return get(t.root, k) }
func (t *Basic[K, V]) Put(k K, v V)      { t.root = t.put(t.root, k, v) }
func (t *Basic[K, V]) String() string    { return Render(t.root) }

func (t *Basic[K, V]) put(n *Node[K, V], k K, v V) *Node[K, V] {
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
	n.refreshHeight()
	return n
}

func (t *Basic[K, V]) Delete(k K) (V, bool) {
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

// delete removes k from the subtree at n and returns the new subtree root.
// A node with children takes over its predecessor (or, without a left
// subtree, its successor), which is then deleted further down.
func (t *Basic[K, V]) delete(n *Node[K, V], k K) *Node[K, V] {
	if n == nil {
		return nil
	}
	switch c := cmp.Compare(k, n.Key); {
	case c < 0:
		n.setLeft(t.delete(n.Left, k))
	case c > 0:
		n.setRight(t.delete(n.Right, k))
	default:
		switch {
		case n.Left == nil && n.Right == nil:
			return nil
		case n.Left != nil:
			pred := Max(n.Left)
			n.Key, n.Value = pred.Key, pred.Value
			n.setLeft(t.delete(n.Left, pred.Key))
		default:
			succ := Min(n.Right)
			n.Key, n.Value = succ.Key, succ.Value
			n.setRight(t.delete(n.Right, succ.Key))
		}
	}
	n.refreshHeight()
	return n
}

var _ Tree[int, int] = (*Basic[int, int])(nil)
