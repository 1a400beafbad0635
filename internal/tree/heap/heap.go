package heap

import (
	"cmp"
	"iter"

	"dsa/internal/log"
)

// Kind selects which end of the order sits on top of the heap.
type Kind int

const (
	Min Kind = iota
	Max
)

func (k Kind) String() string {
	if k == Max {
		return "max"
	}
	return "min"
}

// DefaultCapacity is a three-level tree.
const DefaultCapacity = 7

// Heap is a binary heap of T.
type Heap[T any] struct {
	kind    Kind
	compare func(a, b T) int

	data  []T // len(data) is the capacity
	count int
}

// New returns an empty heap ordered by the natural order of T.
func New[T cmp.Ordered](kind Kind) *Heap[T] {
	return NewFunc(kind, cmp.Compare[T])
}

// NewFunc returns an empty heap ordered by compare. For a Max heap the element
// for which compare reports "greater" wins, so a reversed comparator on a Max
// heap pops in ascending order. NewFunc panics if compare is nil.
func NewFunc[T any](kind Kind, compare func(a, b T) int) *Heap[T] {
	return newHeap(DefaultCapacity, kind, compare)
}

// From builds a heap from items in linear time. items is not modified.
func From[T cmp.Ordered](items []T, kind Kind) *Heap[T] {
	return FromFunc(items, kind, cmp.Compare[T])
}

// FromFunc builds a heap from items ordered by compare. items is not modified.
// FromFunc panics if compare is nil.
func FromFunc[T any](items []T, kind Kind, compare func(a, b T) int) *Heap[T] {
	h := newHeap(len(items), kind, compare)
	h.heapify(items)
	return h
}

func newHeap[T any](want int, kind Kind, compare func(a, b T) int) *Heap[T] {
	if compare == nil {
		panic("heap: compare function is nil")
	}
	c := DefaultCapacity
	for want > c {
		c = c*2 + 1
	}
	return &Heap[T]{kind: kind, compare: compare, data: make([]T, c)}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return h.count }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.count == 0 }

// Cap returns the current backing capacity.
func (h *Heap[T]) Cap() int { return len(h.data) }

// Kind reports whether this is a Min or Max heap.
func (h *Heap[T]) Kind() Kind { return h.kind }

// Push adds x to the heap.
func (h *Heap[T]) Push(x T) {
	if h.count == len(h.data) {
		h.resize(len(h.data)*2 + 1)
	}
	h.data[h.count] = x
	h.count++
	h.siftUp(h.count - 1)
}

// Pop removes and returns the top element.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if h.count == 0 {
		return zero, false
	}
	top := h.data[0]
	h.count--
	h.data[0] = h.data[h.count]
	h.data[h.count] = zero
	if h.count > 0 && len(h.data) > DefaultCapacity && h.count == len(h.data)/2 {
		h.resize(len(h.data) / 2)
	}
	h.siftDown(0)
	return top, true
}

// Peek returns the top element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.count == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Clear drops every element and resets the capacity.
func (h *Heap[T]) Clear() {
	h.data = make([]T, DefaultCapacity)
	h.count = 0
}

// All yields the elements in array (level) order, not in priority order.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < h.count; i++ {
			if !yield(h.data[i]) {
				return
			}
		}
	}
}

// heapify copies items in and sifts down from the last internal node.
func (h *Heap[T]) heapify(items []T) {
	h.count = copy(h.data, items)
	for i := (h.count - 2) / 2; i >= 0; i-- {
		h.siftDown(i)
	}
}

// wins reports whether a belongs above b.
func (h *Heap[T]) wins(a, b T) bool {
	if h.kind == Max {
		return h.compare(a, b) > 0
	}
	return h.compare(a, b) < 0
}

// parent = (i-1)/2
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.wins(h.data[i], h.data[p]) {
			return
		}
		h.data[i], h.data[p] = h.data[p], h.data[i]
		i = p
	}
}

// children = 2i+1, 2i+2
func (h *Heap[T]) siftDown(i int) {
	for {
		child := 2*i + 1
		if child >= h.count {
			return
		}
		if right := child + 1; right < h.count && h.wins(h.data[right], h.data[child]) {
			child = right
		}
		if !h.wins(h.data[child], h.data[i]) {
			return
		}
		h.data[i], h.data[child] = h.data[child], h.data[i]
		i = child
	}
}

func (h *Heap[T]) resize(c int) {
	next := make([]T, c)
	copy(next, h.data[:h.count])
	logger := log.WithComponent("heap")
	logger.Debug().Int("from", len(h.data)).Int("to", c).Int("count", h.count).Msg("resize heap")
	h.data = next
}
