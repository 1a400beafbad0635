package unionfind

// Keyed is a UnionFind over elements identified by a comparable key.
type Keyed[T any, K comparable] struct {
	key   func(T) (K, bool)
	nodes map[K]*node[T, K]
}

type node[T any, K comparable] struct {
	key      K
	item     T
	parent   *node[T, K] // nil for a root
	children []*node[T, K]
}

// NewKeyed builds a Keyed set using key to identify elements. key returns
// false for elements without a valid identity.
func NewKeyed[T any, K comparable](key func(T) (K, bool)) (*Keyed[T, K], error) {
	if key == nil {
		return nil, errNilIdentity
	}
	return &Keyed[T, K]{key: key, nodes: make(map[K]*node[T, K])}, nil
}

func (u *Keyed[T, K]) Len() int      { return len(u.nodes) }
func (u *Keyed[T, K]) IsEmpty() bool { return len(u.nodes) == 0 }

func (u *Keyed[T, K]) Contains(x T) bool {
	_, ok := u.lookup(x)
	return ok
}

func (u *Keyed[T, K]) Add(x T) bool {
	_, added, ok := u.insert(x, true)
	return ok && added
}

func (u *Keyed[T, K]) Union(x, y T) bool {
	nx, _, ok := u.insert(x, false)
	if !ok {
		return false
	}
	ny, _, ok := u.insert(y, false)
	if !ok {
		return false
	}
	u.merge(nx, ny)
	return true
}

func (u *Keyed[T, K]) Connected(x, y T) bool {
	nx, ok := u.lookup(x)
	if !ok {
		return false
	}
	ny, ok := u.lookup(y)
	if !ok {
		return false
	}
	return root(nx) == root(ny)
}

// Sets returns the members of every set, each keyed by its root element's key.
func (u *Keyed[T, K]) Sets() map[K][]T {
	out := make(map[K][]T)
	for _, n := range u.nodes {
		r := root(n)
		out[r.key] = append(out[r.key], n.item)
	}
	return out
}

func (u *Keyed[T, K]) lookup(x T) (*node[T, K], bool) {
	k, ok := u.key(x)
	if !ok {
		return nil, false
	}
	n, ok := u.nodes[k]
	return n, ok
}

func (u *Keyed[T, K]) insert(x T, replace bool) (n *node[T, K], added, ok bool) {
	k, ok := u.key(x)
	if !ok {
		return nil, false, false
	}
	if n, exists := u.nodes[k]; exists {
		if replace {
			n.item = x
		}
		return n, false, true
	}
	n = &node[T, K]{key: k, item: x}
	u.nodes[k] = n
	return n, true, true
}

func (u *Keyed[T, K]) merge(src, cur *node[T, K]) {
	rs, rc := root(src), root(cur)
	if rs == rc {
		return
	}
	rc.parent = rs
	for _, child := range rc.children {
		child.parent = rs
	}
	rs.children = append(rs.children, rc)
	rs.children = append(rs.children, rc.children...)
	rc.children = nil
}

func root[T any, K comparable](n *node[T, K]) *node[T, K] {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

var _ UnionFind[string] = (*Keyed[string, string])(nil)
