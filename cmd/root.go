package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/gridsearch/internal/config"
	"github.com/pfrederiksen/gridsearch/internal/graph"
	"github.com/pfrederiksen/gridsearch/internal/grid"
	"github.com/pfrederiksen/gridsearch/internal/output"
	"github.com/pfrederiksen/gridsearch/internal/search"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown format")

var (
	// Global flags
	rows         int
	cols         int
	obstacleProb float64
	seed         int64
	depthLimit   int
	format       string
	delay        time.Duration
	outDir       string
	debug        bool

	defaults  config.Config
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "gridsearch [algorithm]",
	Short: "Animate uninformed search algorithms on a grid with moving obstacles",
	Long: `gridsearch runs one of six uninformed search algorithms from the top-left
corner of a grid to the bottom-right corner and replays the exploration.

While the search runs, a wall may appear at a random cell after every
expansion, so the map changes under the search.

Algorithms:
  bfs    Breadth-first search
  dfs    Depth-first search
  ucs    Uniform-cost search (diagonal moves cost 1.414)
  dls    Depth-limited search (--depth-limit)
  iddfs  Iterative deepening depth-first search
  bi     Bidirectional breadth-first search

Examples:
  # Animate BFS in the terminal
  gridsearch bfs

  # Reproduce a run with a fixed obstacle seed
  gridsearch ucs --seed 42 --obstacle-prob 0.1

  # Write PNG frames
  gridsearch iddfs --format png --out frames

  # Search tree as Graphviz DOT
  gridsearch dfs --format dot --rows 8 --cols 8

  # Compare every algorithm on the same seed
  gridsearch compare --seed 7`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgs:         []string{"bfs", "dfs", "ucs", "dls", "iddfs", "bi"},
	PersistentPreRunE: setup,
	RunE:              runSearch,
	SilenceUsage:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults, configErr = config.Load()
	if configErr != nil {
		defaults = config.Default()
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&rows, "rows", defaults.Rows, "Grid rows")
	flags.IntVar(&cols, "cols", defaults.Cols, "Grid columns")
	flags.Float64Var(&obstacleProb, "obstacle-prob", defaults.ObstacleProb, "Chance of a new wall after each expansion")
	flags.Int64Var(&seed, "seed", defaults.Seed, "Obstacle seed (0: time-based)")
	flags.IntVar(&depthLimit, "depth-limit", defaults.DepthLimit, "Depth limit for dls")
	flags.BoolVar(&debug, "debug", defaults.Debug, "Enable debug logging")

	rootCmd.Flags().StringVar(&format, "format", defaults.Format, "Output format: terminal, png, json, dot, tree")
	rootCmd.Flags().DurationVar(&delay, "delay", defaults.FrameDelay, "Pause between animation frames")
	rootCmd.Flags().StringVar(&outDir, "out", defaults.OutDir, "Directory for png frames")
}

func setup(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return fmt.Errorf("failed to load config: %w", configErr)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	name := defaults.Algorithm
	if len(args) == 1 {
		name = args[0]
	}
	alg, err := search.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	if err := checkFormat(format); err != nil {
		return err
	}

	runSeed := resolveSeed(seed)
	slog.Info("Starting search",
		"algorithm", alg,
		"rows", rows,
		"cols", cols,
		"obstacleProb", obstacleProb,
		"seed", runSeed,
		"format", format)

	g, res, err := searchOnce(alg, runSeed)
	if err != nil {
		return err
	}

	slog.Info("Search complete",
		"found", res.Found(),
		"explored", len(res.Explored),
		"pathLength", len(res.Path),
		"dynamicWalls", g.DynamicWallCount())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return render(ctx, cmd.OutOrStdout(), g, res, runSeed)
}

// searchOnce builds a fresh grid and runs alg on it.
func searchOnce(alg search.Algorithm, runSeed int64) (*grid.Grid, search.Result, error) {
	g, err := grid.New(rows, cols, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: rows - 1, Col: cols - 1})
	if err != nil {
		return nil, search.Result{}, fmt.Errorf("failed to create grid: %w", err)
	}

	res, err := search.Run(alg, g, g.Start(), g.Target(),
		search.WithObstacles(grid.NewRandomObstacles(obstacleProb, runSeed)),
		search.WithDepthLimit(depthLimit))
	if err != nil {
		return nil, search.Result{}, fmt.Errorf("search failed: %w", err)
	}
	return g, res, nil
}

func render(ctx context.Context, w io.Writer, g *grid.Grid, res search.Result, runSeed int64) error {
	switch format {
	case "terminal":
		r := output.NewTerminalRenderer(w)
		if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
			r.Clear = false
			r.NoColor = true
			return output.FinalFrame(r, g, res)
		}
		err := output.Replay(ctx, r, g, res, delay)
		if errors.Is(err, context.Canceled) {
			slog.Info("Animation interrupted")
			return nil
		}
		return err
	case "png":
		r, err := output.NewPNGRenderer(outDir, output.DefaultCellSize)
		if err != nil {
			return err
		}
		if err := output.Replay(ctx, r, g, res, 0); err != nil {
			return err
		}
		slog.Info("Frames written", "dir", outDir, "count", len(r.Written()))
		return nil
	case "json":
		return output.RenderJSON(w, output.NewReport(g, res, runSeed, obstacleProb))
	case "dot":
		return output.RenderDOT(w, graph.FromResult(res))
	case "tree":
		return output.RenderTree(w, graph.FromResult(res), res.Start.String())
	default:
		return checkFormat(format)
	}
}

func checkFormat(f string) error {
	switch f {
	case "terminal", "png", "json", "dot", "tree":
		return nil
	}
	return fmt.Errorf("%w: %s (must be terminal, png, json, dot, or tree)", ErrUnknownFormat, f)
}

func resolveSeed(s int64) int64 {
	if s != 0 {
		return s
	}
	return time.Now().UnixNano()
}
