package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/sokoengine/pkg/bench"
	"github.com/yourusername/sokoengine/pkg/engine"
	"github.com/yourusername/sokoengine/pkg/level"
)

var benchFlags struct {
	algorithms    []string
	timeLimit     time.Duration
	maxIterations int
	seed          int64
	levels        int
}

var benchCmd = &cobra.Command{
	Use:   "bench <collection.slc>",
	Short: "Benchmark the solvers against a level collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := level.LoadCollection(args[0])
		if err != nil {
			return err
		}
		fixtures := bench.FromCollection(c)
		if benchFlags.levels > 0 && benchFlags.levels < len(fixtures) {
			fixtures = fixtures[:benchFlags.levels]
		}

		opts := bench.DefaultOptions()
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		if benchFlags.timeLimit > 0 {
			opts.TimeLimit = benchFlags.timeLimit
		}
		opts.MaxIterations = benchFlags.maxIterations
		opts.Seed = benchFlags.seed
		if len(benchFlags.algorithms) > 0 {
			opts.Algorithms = nil
			for _, name := range benchFlags.algorithms {
				alg, err := engine.ParseAlgorithm(name)
				if err != nil {
					return err
				}
				opts.Algorithms = append(opts.Algorithms, alg)
			}
		}

		fmt.Printf("benchmarking %d levels from %q\n\n", len(fixtures), c.Title)
		report := bench.Run(fixtures, opts)
		return report.WriteText(os.Stdout)
	},
}

func init() {
	benchCmd.Flags().StringSliceVarP(&benchFlags.algorithms, "algorithms", "a", nil, "algorithms to run (default all)")
	benchCmd.Flags().DurationVarP(&benchFlags.timeLimit, "time-limit", "t", 0, "per-solve wall-clock limit")
	benchCmd.Flags().IntVarP(&benchFlags.maxIterations, "max-iterations", "i", 0, "per-solve iteration ceiling")
	benchCmd.Flags().Int64Var(&benchFlags.seed, "seed", 0, "random seed for sa")
	benchCmd.Flags().IntVarP(&benchFlags.levels, "levels", "n", 0, "only benchmark the first N levels")
	rootCmd.AddCommand(benchCmd)
}
