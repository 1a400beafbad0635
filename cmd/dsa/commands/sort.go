package commands

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dsa/internal/order"
	"dsa/internal/sorting"
)

func sortCmd() *cobra.Command {
	var (
		algo   string
		random int
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "sort [numbers...]",
		Short: "Sort integers with bubble, insertion, merge or quick sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := sorting.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			var items []int
			if random > 0 {
				r := rand.New(rand.NewPCG(seed, seed>>1))
				items = order.RandomInts(r, random, random*10)
			}
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("not an integer: %q", arg)
				}
				items = append(items, n)
			}
			s, err := sorting.New[int](a)
			if err != nil {
				return err
			}
			s.Sort(items)
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(items))
			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", string(sorting.Quick), "algorithm: bubble, insertion, merge, quick")
	cmd.Flags().IntVar(&random, "random", 0, "prepend N random integers")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for --random")
	cmd.AddCommand(benchCmd())
	return cmd
}

func benchCmd() *cobra.Command {
	var (
		algos    []string
		size     int
		seed     uint64
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sort the same random input with each algorithm and report timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := sorting.BenchConfig{Size: size, Max: size, Seed: seed, Parallelism: parallel}
			for _, name := range algos {
				a, err := sorting.ParseAlgorithm(name)
				if err != nil {
					return err
				}
				cfg.Algorithms = append(cfg.Algorithms, a)
			}
			results, err := sorting.Bench(ctxOf(cmd), cfg)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tSIZE\tDURATION\tSORTED")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%t\n", r.Algorithm, r.Size, r.Duration, r.Sorted)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&algos, "algo", nil, "algorithms to run (default all)")
	cmd.Flags().IntVar(&size, "size", 10000, "number of elements")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "input seed (0 = time based)")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "concurrent sorts (0 = one per algorithm)")
	return cmd
}

func joinInts(items []int) string {
	parts := make([]string, len(items))
	for i, n := range items {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
