// Package config resolves run settings from defaults, an optional .env file
// and GRIDSEARCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/pfrederiksen/gridsearch/internal/grid"
	"github.com/pfrederiksen/gridsearch/internal/output"
	"github.com/pfrederiksen/gridsearch/internal/search"
)

// Config holds the settings of one run.
type Config struct {
	Algorithm    string        // bfs, dfs, ucs, dls, iddfs or bi
	Rows         int           // grid height
	Cols         int           // grid width
	ObstacleProb float64       // chance of a dynamic wall per expansion
	Seed         int64         // 0 picks a time-based seed
	DepthLimit   int           // DLS depth limit
	Format       string        // terminal, png, json, dot or tree
	FrameDelay   time.Duration // pause between replayed frames
	OutDir       string        // PNG frame directory
	Debug        bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Algorithm:    search.BFS.String(),
		Rows:         grid.DefaultRows,
		Cols:         grid.DefaultCols,
		ObstacleProb: grid.DefaultObstacleProb,
		DepthLimit:   search.DefaultDepthLimit,
		Format:       "terminal",
		FrameDelay:   output.DefaultFrameDelay,
		OutDir:       "frames",
	}
}

// Load reads the given env files (".env" when none are named) and then the
// environment over the defaults. A missing env file is not an error.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
		slog.Debug("No env file loaded", "error", err)
	}

	cfg := Default()
	cfg.Algorithm = getEnvWithDefault("GRIDSEARCH_ALGORITHM", cfg.Algorithm)
	cfg.Format = getEnvWithDefault("GRIDSEARCH_FORMAT", cfg.Format)
	cfg.OutDir = getEnvWithDefault("GRIDSEARCH_OUT", cfg.OutDir)

	var err error
	if cfg.Rows, err = getEnvAsInt("GRIDSEARCH_ROWS", cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = getEnvAsInt("GRIDSEARCH_COLS", cfg.Cols); err != nil {
		return Config{}, err
	}
	if cfg.DepthLimit, err = getEnvAsInt("GRIDSEARCH_DEPTH_LIMIT", cfg.DepthLimit); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64("GRIDSEARCH_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.ObstacleProb, err = getEnvAsFloat("GRIDSEARCH_OBSTACLE_PROB", cfg.ObstacleProb); err != nil {
		return Config{}, err
	}
	if cfg.FrameDelay, err = getEnvAsDuration("GRIDSEARCH_DELAY", cfg.FrameDelay); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = getEnvAsBool("GRIDSEARCH_DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	return f, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	return d, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return b, nil
}
