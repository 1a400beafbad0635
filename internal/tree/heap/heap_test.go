package heap_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa/internal/order"
	"dsa/internal/tree/heap"
)

func randomInts(n int) []int {
	return order.RandomInts(rand.New(rand.NewPCG(3, 5)), n, n)
}

func drain[T any](h *heap.Heap[T]) []T {
	var out []T
	for {
		v, ok := h.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestMinHeap_PushPop(t *testing.T) {
	input := randomInts(20000)
	h := heap.New[int](heap.Min)
	for _, v := range input {
		h.Push(v)
	}
	require.Equal(t, len(input), h.Len())

	want := slices.Clone(input)
	slices.Sort(want)
	assert.Equal(t, want, drain(h))
	assert.True(t, h.IsEmpty())
	assert.Equal(t, heap.DefaultCapacity, h.Cap(), "capacity shrinks back as the heap drains")
}

func TestMaxHeap_PushPop(t *testing.T) {
	h := heap.New[int](heap.Max)
	for _, v := range []int{5, 1, 9, 3, 9, 0} {
		h.Push(v)
	}
	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 9, top)
	assert.Equal(t, []int{9, 9, 5, 3, 1, 0}, drain(h))
}

func TestFromFunc_ReversedMaxIsAscending(t *testing.T) {
	input := randomInts(5000)
	original := slices.Clone(input)

	reversed := func(a, b int) int { return b - a }
	h := heap.FromFunc(input, heap.Max, reversed)
	assert.Equal(t, heap.Max, h.Kind())
	assert.Equal(t, original, input, "heapify must not touch the caller's slice")

	want := slices.Clone(input)
	slices.Sort(want)
	assert.Equal(t, want, drain(h))
}

func TestNilCompare_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "heap: compare function is nil", func() {
		heap.NewFunc[int](heap.Min, nil)
	})
	assert.PanicsWithValue(t, "heap: compare function is nil", func() {
		heap.FromFunc([]int{1, 2}, heap.Max, nil)
	})
}

func TestFrom_Capacity(t *testing.T) {
	tests := []struct {
		n   int
		cap int
	}{
		{0, 7}, {7, 7}, {8, 15}, {15, 15}, {16, 31}, {100, 127},
	}
	for _, tt := range tests {
		h := heap.From(make([]int, tt.n), heap.Min)
		assert.Equal(t, tt.cap, h.Cap(), "n=%d", tt.n)
		assert.Equal(t, tt.n, h.Len())
	}
}

func TestGrowAndShrink(t *testing.T) {
	h := heap.New[int](heap.Min)
	for i := 0; i < 8; i++ {
		h.Push(i)
	}
	assert.Equal(t, 15, h.Cap())

	// 8 -> 7 elements: 7 == 15/2, so the last level is dropped.
	_, _ = h.Pop()
	assert.Equal(t, 7, h.Cap())
	assert.Equal(t, 7, h.Len())
}

func TestEmptyAndClear(t *testing.T) {
	h := heap.New[string](heap.Min)
	_, ok := h.Pop()
	assert.False(t, ok)
	_, ok = h.Peek()
	assert.False(t, ok)

	for _, s := range []string{"c", "a", "b", "d", "e", "f", "g", "h"} {
		h.Push(s)
	}
	h.Clear()
	assert.True(t, h.IsEmpty())
	assert.Equal(t, heap.DefaultCapacity, h.Cap())
}

func TestAll_ArrayOrder(t *testing.T) {
	h := heap.From([]int{3, 1, 2}, heap.Min)
	var got []int
	for v := range h.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 3, 2}, got)

	// Early break stops iteration.
	var first []int
	for v := range h.All() {
		first = append(first, v)
		break
	}
	assert.Equal(t, []int{1}, first)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "min", heap.Min.String())
	assert.Equal(t, "max", heap.Max.String())
}
