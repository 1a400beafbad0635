package sorting

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"dsa/internal/log"
	"dsa/internal/order"
)

// BenchConfig describes one benchmark run.
type BenchConfig struct {
	Algorithms  []Algorithm // defaults to Algorithms
	Size        int         // number of elements
	Max         int         // values are drawn from [0, Max)
	Seed        uint64      // 0 picks a time-based seed
	Parallelism int         // concurrent sorts; <= 0 means one per algorithm
}

// BenchResult is the outcome of sorting one copy of the input.
type BenchResult struct {
	Algorithm Algorithm
	Size      int
	Duration  time.Duration
	Sorted    bool
}

// Bench sorts an independent copy of the same random input with every
// requested algorithm. Results are returned in request order.
func Bench(ctx context.Context, cfg BenchConfig) ([]BenchResult, error) {
	algos := cfg.Algorithms
	if len(algos) == 0 {
		algos = Algorithms
	}
	sorters := make([]Sorter[int], len(algos))
	for i, a := range algos {
		s, err := New[int](a)
		if err != nil {
			return nil, err
		}
		sorters[i] = s
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	input := order.RandomInts(rand.New(rand.NewPCG(seed, seed>>1)), cfg.Size, cfg.Max)

	logger := log.WithComponent("sorting")
	logger.Debug().Int("size", len(input)).Int("algorithms", len(algos)).Uint64("seed", seed).Msg("bench start")

	results := make([]BenchResult, len(algos))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		g.SetLimit(cfg.Parallelism)
	}
	for i, s := range sorters {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data := slices.Clone(input)
			start := time.Now()
			s.Sort(data)
			results[i] = BenchResult{
				Algorithm: s.Algorithm(),
				Size:      len(data),
				Duration:  time.Since(start),
				Sorted:    order.IsAscending(data),
			}
			logger.Debug().Str("algorithm", string(s.Algorithm())).Dur("took", results[i].Duration).Msg("bench done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
