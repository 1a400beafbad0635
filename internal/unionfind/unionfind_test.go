package unionfind_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa/internal/unionfind"
)

type item struct {
	id   int
	name string
}

func newIndexed(t *testing.T) *unionfind.Indexed[item] {
	t.Helper()
	uf, err := unionfind.NewIndexed(func(i item) int { return i.id })
	require.NoError(t, err)
	return uf
}

func newKeyed(t *testing.T) *unionfind.Keyed[item, string] {
	t.Helper()
	uf, err := unionfind.NewKeyed(func(i item) (string, bool) {
		return i.name, i.name != ""
	})
	require.NoError(t, err)
	return uf
}

func TestConstructors_NilIdentity(t *testing.T) {
	_, err := unionfind.NewIndexed[item](nil)
	require.Error(t, err)
	_, err = unionfind.NewKeyed[item, string](nil)
	require.Error(t, err)
}

// exercise runs the same scenario against both implementations.
func exercise(t *testing.T, uf unionfind.UnionFind[item]) {
	a, b, c := item{1, "A"}, item{2, "B"}, item{3, "C"}
	d, e, f := item{4, "D"}, item{5, "E"}, item{6, "F"}

	assert.True(t, uf.IsEmpty())

	require.True(t, uf.Union(a, b))
	require.True(t, uf.Union(b, c))
	require.True(t, uf.Union(d, e))
	require.True(t, uf.Union(e, f))
	assert.Equal(t, 6, uf.Len())

	assert.True(t, uf.Connected(a, c))
	assert.False(t, uf.Connected(a, d))

	require.True(t, uf.Union(a, f))
	assert.True(t, uf.Connected(c, d))

	// Already connected: still true, no change.
	require.True(t, uf.Union(c, d))
	assert.Equal(t, 6, uf.Len())
}

func TestIndexed_Scenario(t *testing.T) { exercise(t, newIndexed(t)) }
func TestKeyed_Scenario(t *testing.T)   { exercise(t, newKeyed(t)) }

func TestIndexed_AddAndInvalid(t *testing.T) {
	uf := newIndexed(t)

	assert.True(t, uf.Add(item{10, "K"}))
	assert.False(t, uf.Add(item{10, "K2"}), "re-adding reports false")
	got, ok := uf.Get(10)
	require.True(t, ok)
	assert.Equal(t, "K2", got.name, "re-adding replaces the stored value")

	assert.False(t, uf.Add(item{-1, "bad"}))
	assert.False(t, uf.Union(item{-1, "bad"}, item{10, "K"}))
	assert.False(t, uf.Contains(item{-1, "bad"}))
	assert.False(t, uf.Contains(item{99, "absent"}))
	assert.False(t, uf.Connected(item{10, "K"}, item{99, "absent"}))
	assert.Equal(t, 1, uf.Len())
}

func TestIndexed_ChainedMerges(t *testing.T) {
	uf := newIndexed(t)
	const n = 200
	for i := 1; i < n; i++ {
		require.True(t, uf.Union(item{id: i - 1}, item{id: i}))
	}
	for i := 0; i < n; i++ {
		require.True(t, uf.Connected(item{id: 0}, item{id: i}))
	}
	assert.Equal(t, n, uf.Len())
}

func TestIndexed_Find(t *testing.T) {
	uf := newIndexed(t)
	uf.Union(item{id: 3}, item{id: 1})
	uf.Union(item{id: 5}, item{id: 3})
	uf.Add(item{id: 7})

	r1, ok := uf.Find(item{id: 1})
	require.True(t, ok)
	r5, ok := uf.Find(item{id: 5})
	require.True(t, ok)
	assert.Equal(t, r1, r5)

	r7, ok := uf.Find(item{id: 7})
	require.True(t, ok)
	assert.Equal(t, 7, r7)
	assert.NotEqual(t, r1, r7)

	_, ok = uf.Find(item{id: 2})
	assert.False(t, ok)
	_, ok = uf.Find(item{id: -1})
	assert.False(t, ok)
}

func TestKeyed_Sets(t *testing.T) {
	uf := newKeyed(t)
	uf.Union(item{name: "a"}, item{name: "b"})
	uf.Union(item{name: "c"}, item{name: "d"})
	uf.Add(item{name: "e"})
	assert.False(t, uf.Add(item{name: ""}))

	sets := uf.Sets()
	require.Len(t, sets, 3)

	var groups []string
	for _, members := range sets {
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, m.name)
		}
		slices.Sort(names)
		groups = append(groups, strings.Join(names, ""))
	}
	slices.Sort(groups)
	assert.Equal(t, []string{"ab", "cd", "e"}, groups)
}
