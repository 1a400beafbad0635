package bst_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa/internal/tree/bst"
)

// checkParents verifies every child points back at its parent.
func checkParents[V any](t *testing.T, root *bst.Node[int, V]) {
	t.Helper()
	if root != nil {
		require.Nil(t, root.Parent, "root must have no parent")
	}
	bst.PreOrder(root, func(n *bst.Node[int, V]) {
		if n.Left != nil {
			require.Same(t, n, n.Left.Parent, "left child of %d", n.Key)
		}
		if n.Right != nil {
			require.Same(t, n, n.Right.Parent, "right child of %d", n.Key)
		}
	})
}

// checkAVL verifies balance factors and cached heights.
func checkAVL[V any](t *testing.T, root *bst.Node[int, V]) {
	t.Helper()
	bst.PreOrder(root, func(n *bst.Node[int, V]) {
		diff := n.Left.Height() - n.Right.Height()
		require.LessOrEqual(t, diff, 1, "node %d left-heavy", n.Key)
		require.GreaterOrEqual(t, diff, -1, "node %d right-heavy", n.Key)
		require.Equal(t, bst.HeightOf(n), n.Height(), "stale height at %d", n.Key)
	})
}

func trees() map[string]func() bst.Tree[int, int] {
	return map[string]func() bst.Tree[int, int]{
		"basic": func() bst.Tree[int, int] { return bst.NewBasic[int, int]() },
		"avl":   func() bst.Tree[int, int] { return bst.NewAVL[int, int]() },
	}
}

func TestTree_PutGetDelete(t *testing.T) {
	for name, mk := range trees() {
		t.Run(name, func(t *testing.T) {
			tr := mk()
			arr := []int{5, 5, 3, 7, 2, 4, 6, 8, 8}
			for _, k := range arr {
				tr.Put(k, k*10)
			}
			assert.Equal(t, 7, tr.Len(), "duplicates replace")
			assert.True(t, bst.IsBST(tr.Root()))
			assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, bst.Keys(tr.Root()))

			v, ok := tr.Get(4)
			require.True(t, ok)
			assert.Equal(t, 40, v)
			_, ok = tr.Get(99)
			assert.False(t, ok)

			for _, k := range arr {
				_, _ = tr.Delete(k)
				assert.True(t, bst.IsBST(tr.Root()))
				checkParents(t, tr.Root())
			}
			assert.True(t, tr.IsEmpty())
			assert.Equal(t, 0, tr.Height())

			_, ok = tr.Delete(5)
			assert.False(t, ok)
		})
	}
}

func TestTree_RandomAgainstMap(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for name, mk := range trees() {
		t.Run(name, func(t *testing.T) {
			tr := mk()
			ref := map[int]int{}
			for i := 0; i < 3000; i++ {
				k := r.IntN(500)
				if r.IntN(3) == 0 {
					want, wantOK := ref[k]
					got, ok := tr.Delete(k)
					require.Equal(t, wantOK, ok)
					require.Equal(t, want, got)
					delete(ref, k)
				} else {
					tr.Put(k, i)
					ref[k] = i
				}
			}
			require.Equal(t, len(ref), tr.Len())
			keys := make([]int, 0, len(ref))
			for k := range ref {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			if diff := cmp.Diff(keys, bst.Keys(tr.Root())); diff != "" {
				t.Fatalf("keys mismatch (-want +got):\n%s", diff)
			}
			checkParents(t, tr.Root())
			if name == "avl" {
				checkAVL(t, tr.Root())
			}
		})
	}
}

func TestAVL_Rotations(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"RR", []int{1, 2, 3}},
		{"LL", []int{3, 2, 1}},
		{"RL", []int{1, 3, 2}},
		{"LR", []int{3, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avl := bst.NewAVL[int, int]()
			for _, k := range tt.input {
				avl.Put(k, k)
			}
			root := avl.Root()
			require.Equal(t, 2, root.Key)
			assert.Equal(t, 1, root.Left.Key)
			assert.Equal(t, 3, root.Right.Key)
			assert.Equal(t, 2, avl.Height())
			checkParents(t, root)
		})
	}
}

func TestAVL_SequentialStaysShallow(t *testing.T) {
	avl := bst.NewAVL[int, string]()
	for i := 1; i <= 7; i++ {
		avl.Put(i, "")
	}
	assert.Equal(t, 3, avl.Height(), "7 sequential keys form a perfect tree")
	assert.Equal(t, 4, avl.Root().Key)

	for _, k := range []int{1, 2, 3} {
		_, ok := avl.Delete(k)
		require.True(t, ok)
		checkAVL(t, avl.Root())
	}
	assert.Equal(t, []int{4, 5, 6, 7}, bst.Keys(avl.Root()))

	basic := bst.NewBasic[int, string]()
	for i := 1; i <= 7; i++ {
		basic.Put(i, "")
	}
	assert.Equal(t, 7, basic.Height(), "plain BST degenerates into a list")
}

func TestTraversals(t *testing.T) {
	tr := bst.NewBasic[int, struct{}]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Put(k, struct{}{})
	}

	collect := func(walk func(*bst.Node[int, struct{}], func(*bst.Node[int, struct{}]))) []int {
		var out []int
		walk(tr.Root(), func(n *bst.Node[int, struct{}]) { out = append(out, n.Key) })
		return out
	}
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collect(bst.PreOrder[int, struct{}]))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(bst.InOrder[int, struct{}]))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collect(bst.PostOrder[int, struct{}]))
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, collect(bst.LevelOrder[int, struct{}]))

	var leaves []int
	for _, n := range bst.Leaves(tr.Root()) {
		leaves = append(leaves, n.Key)
	}
	assert.Equal(t, []int{1, 3, 5, 7}, leaves)

	assert.Equal(t, 1, bst.Min(tr.Root()).Key)
	assert.Equal(t, 7, bst.Max(tr.Root()).Key)
	assert.Equal(t, 3, bst.HeightOf(tr.Root()))
	assert.Nil(t, bst.Find(tr.Root(), 42))
}

func TestIsBST_DetectsDeepViolation(t *testing.T) {
	// 5's left subtree holds 6 two levels down: each parent/child pair looks
	// fine on its own, the tree as a whole does not.
	root := &bst.Node[int, int]{Key: 5}
	root.Left = &bst.Node[int, int]{Key: 3, Parent: root}
	root.Left.Right = &bst.Node[int, int]{Key: 6, Parent: root.Left}
	assert.False(t, bst.IsBST(root))
	assert.True(t, bst.IsBST[int, int](nil))
}

func TestRender(t *testing.T) {
	tr := bst.NewBasic[int, int]()
	for _, k := range []int{4, 2, 6, 1, 3} {
		tr.Put(k, k)
	}
	want := "4\n" +
		"├── L:2\n" +
		"│   ├── L:1\n" +
		"│   └── R:3\n" +
		"└── R:6\n"
	assert.Equal(t, want, bst.Render(tr.Root()))
	assert.Equal(t, want, tr.String())
	assert.Equal(t, "(empty)\n", bst.Render[int, int](nil))
}
