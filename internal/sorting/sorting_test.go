package sorting_test

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa/internal/order"
	"dsa/internal/sorting"
)

func TestParseAlgorithm(t *testing.T) {
	a, err := sorting.ParseAlgorithm(" Merge ")
	require.NoError(t, err)
	assert.Equal(t, sorting.Merge, a)

	_, err = sorting.ParseAlgorithm("bogo")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestNewFunc_Rejects(t *testing.T) {
	_, err := sorting.NewFunc[int](sorting.Quick, nil)
	require.Error(t, err)

	_, err = sorting.New[int]("heap")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestSorters_RandomInput(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for _, algo := range sorting.Algorithms {
		t.Run(string(algo), func(t *testing.T) {
			s, err := sorting.New[int](algo)
			require.NoError(t, err)
			assert.Equal(t, algo, s.Algorithm())

			for _, size := range []int{0, 1, 2, 3, 17, 100, 2000} {
				data := order.RandomInts(r, size, 1000)
				want := slices.Clone(data)
				slices.Sort(want)

				s.Sort(data)
				require.Equal(t, want, data, "size %d", size)
			}
		})
	}
}

func TestSorters_EdgeShapes(t *testing.T) {
	shapes := map[string][]int{
		"ascending":  {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		"descending": {20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		"constant":   slices.Repeat([]int{5}, 40),
		"few values": {3, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3},
	}
	for _, algo := range sorting.Algorithms {
		s, err := sorting.New[int](algo)
		require.NoError(t, err)
		for name, shape := range shapes {
			data := slices.Clone(shape)
			s.Sort(data)
			assert.True(t, order.IsAscending(data), "%s on %s", algo, name)
		}
	}
}

func TestSorters_Strings(t *testing.T) {
	s, err := sorting.New[string](sorting.Quick)
	require.NoError(t, err)
	data := strings.Fields("pear apple fig banana cherry apple")
	s.Sort(data)
	assert.Equal(t, []string{"apple", "apple", "banana", "cherry", "fig", "pear"}, data)
}

func TestMerge_Stable(t *testing.T) {
	type pair struct {
		key   int
		order int
	}
	s, err := sorting.NewFunc(sorting.Merge, func(a, b pair) int { return a.key - b.key })
	require.NoError(t, err)

	data := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {0, 4}, {2, 5}}
	s.Sort(data)
	assert.Equal(t, []pair{{0, 4}, {1, 1}, {1, 3}, {2, 0}, {2, 2}, {2, 5}}, data)
}

func TestBench(t *testing.T) {
	results, err := sorting.Bench(context.Background(), sorting.BenchConfig{
		Size:        3000,
		Max:         3000,
		Seed:        42,
		Parallelism: 2,
	})
	require.NoError(t, err)
	require.Len(t, results, len(sorting.Algorithms))
	for i, res := range results {
		assert.Equal(t, sorting.Algorithms[i], res.Algorithm)
		assert.Equal(t, 3000, res.Size)
		assert.True(t, res.Sorted, "%s left input unsorted", res.Algorithm)
	}
}

func TestBench_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sorting.Bench(ctx, sorting.BenchConfig{Size: 10, Max: 10})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBench_UnknownAlgorithm(t *testing.T) {
	_, err := sorting.Bench(context.Background(), sorting.BenchConfig{
		Algorithms: []sorting.Algorithm{"shell"},
		Size:       10,
	})
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}
