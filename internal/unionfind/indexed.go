package unionfind

const initialSlots = 2

// Indexed is a UnionFind over elements with dense non-negative integer ids.
type Indexed[T any] struct {
	index func(T) int

	items    []T
	present  []bool
	parent   []int
	children [][]int // members absorbed by a root; empty for non-roots
	count    int
}

// NewIndexed builds an Indexed set using index to identify elements.
// A negative index marks an element as invalid.
func NewIndexed[T any](index func(T) int) (*Indexed[T], error) {
	if index == nil {
		return nil, errNilIdentity
	}
	return &Indexed[T]{
		index:    index,
		items:    make([]T, initialSlots),
		present:  make([]bool, initialSlots),
		parent:   make([]int, initialSlots),
		children: make([][]int, initialSlots),
	}, nil
}

func (u *Indexed[T]) Len() int      { return u.count }
func (u *Indexed[T]) IsEmpty() bool { return u.count == 0 }

func (u *Indexed[T]) Contains(x T) bool {
	_, ok := u.lookup(x)
	return ok
}

func (u *Indexed[T]) Add(x T) bool {
	_, added, ok := u.insert(x, true)
	return ok && added
}

func (u *Indexed[T]) Union(x, y T) bool {
	ix, _, ok := u.insert(x, false)
	if !ok {
		return false
	}
	iy, _, ok := u.insert(y, false)
	if !ok {
		return false
	}
	u.merge(ix, iy)
	return true
}

func (u *Indexed[T]) Connected(x, y T) bool {
	ix, ok := u.lookup(x)
	if !ok {
		return false
	}
	iy, ok := u.lookup(y)
	if !ok {
		return false
	}
	return u.root(ix) == u.root(iy)
}

// Find returns the slot of x's set root. Merges flatten, so this is at most
// one hop.
func (u *Indexed[T]) Find(x T) (int, bool) {
	i, ok := u.lookup(x)
	if !ok {
		return 0, false
	}
	return u.root(i), true
}

// Get returns the element stored at id.
func (u *Indexed[T]) Get(id int) (T, bool) {
	if id < 0 || id >= len(u.items) || !u.present[id] {
		var zero T
		return zero, false
	}
	return u.items[id], true
}

func (u *Indexed[T]) lookup(x T) (int, bool) {
	i := u.index(x)
	if i < 0 || i >= len(u.items) || !u.present[i] {
		return 0, false
	}
	return i, true
}

// insert stores x, returning its slot, whether it was new and whether its
// identity is valid. An existing element is overwritten only when replace is
// set.
func (u *Indexed[T]) insert(x T, replace bool) (slot int, added, ok bool) {
	i := u.index(x)
	if i < 0 {
		return 0, false, false
	}
	u.grow(i + 1)
	if u.present[i] {
		if replace {
			u.items[i] = x
		}
		return i, false, true
	}
	u.items[i] = x
	u.present[i] = true
	u.parent[i] = i
	u.children[i] = nil
	u.count++
	return i, true, true
}

// merge hangs the root of cur under the root of src and re-points every
// member of the absorbed set at the surviving root.
func (u *Indexed[T]) merge(src, cur int) {
	rs, rc := u.root(src), u.root(cur)
	if rs == rc {
		return
	}
	u.parent[rc] = rs
	for _, child := range u.children[rc] {
		u.parent[child] = rs
	}
	u.children[rs] = append(u.children[rs], rc)
	u.children[rs] = append(u.children[rs], u.children[rc]...)
	u.children[rc] = nil
}

func (u *Indexed[T]) root(i int) int {
	for u.parent[i] != i {
		i = u.parent[i]
	}
	return i
}

func (u *Indexed[T]) grow(size int) {
	if size <= len(u.items) {
		return
	}
	n := max(size, 2*len(u.items))
	u.items = append(u.items, make([]T, n-len(u.items))...)
	u.present = append(u.present, make([]bool, n-len(u.present))...)
	u.parent = append(u.parent, make([]int, n-len(u.parent))...)
	u.children = append(u.children, make([][]int, n-len(u.children))...)
}

var _ UnionFind[int] = (*Indexed[int])(nil)
