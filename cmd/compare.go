package cmd

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pfrederiksen/gridsearch/internal/search"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every algorithm on the same grid and obstacle seed",
	Long: `compare runs all six algorithms, each on a fresh grid driven by the same
obstacle seed, and prints one line per algorithm followed by the mean and
median number of explored cells.`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

type comparison struct {
	alg          search.Algorithm
	res          search.Result
	dynamicWalls int
}

func runCompare(cmd *cobra.Command, args []string) error {
	runSeed := resolveSeed(seed)
	slog.Info("Comparing algorithms", "rows", rows, "cols", cols, "seed", runSeed)

	algs := search.Algorithms()
	results := make([]comparison, len(algs))

	var eg errgroup.Group
	for i, alg := range algs {
		i, alg := i, alg
		eg.Go(func() error {
			g, res, err := searchOnce(alg, runSeed)
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}
			results[i] = comparison{alg: alg, res: res, dynamicWalls: g.DynamicWallCount()}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tMOVES\tCOST\tEXPLORED\tWALLS")

	explored := make(stats.Float64Data, 0, len(results))
	for _, c := range results {
		moves := 0
		if c.res.Found() {
			moves = len(c.res.Path) - 1
		}
		fmt.Fprintf(tw, "%s\t%t\t%d\t%.3f\t%d\t%d\n",
			c.alg, c.res.Found(), moves, c.res.Cost(), len(c.res.Explored), c.dynamicWalls)
		explored = append(explored, float64(len(c.res.Explored)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	mean, err := explored.Mean()
	if err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}
	median, err := explored.Median()
	if err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nexplored: mean %.1f, median %.1f\n", mean, median)
	return nil
}
