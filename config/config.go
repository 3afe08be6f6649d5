// Package config builds the game configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/deitrix/brickfall/engine"
	"github.com/joho/godotenv"
)

const (
	EnvWidth           = "BRICKFALL_WIDTH"
	EnvHeight          = "BRICKFALL_HEIGHT"
	EnvQueueSize       = "BRICKFALL_QUEUE_SIZE"
	EnvClockPeriod     = "BRICKFALL_CLOCK_PERIOD"
	EnvAnimationLength = "BRICKFALL_ANIMATION_LENGTH"
	EnvPointsPerRow    = "BRICKFALL_POINTS_PER_ROW"
	EnvSeed            = "BRICKFALL_SEED"
)

// Load reads env files into the environment and builds a config from it. With no files it
// reads .env from the working directory, which may be absent. Variables already set in the
// environment win over the files.
func Load(files ...string) (engine.Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return engine.Config{}, fmt.Errorf("loading env file: %w", err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a config from variables looked up with lookup, starting from the defaults.
// A missing seed is taken from the wall clock.
func FromEnv(lookup func(string) (string, bool)) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	ints := []struct {
		name string
		dst  *int
		min  int
	}{
		{EnvWidth, &cfg.Width, 4},
		{EnvHeight, &cfg.Height, 4},
		{EnvQueueSize, &cfg.QueueSize, 1},
		{EnvClockPeriod, &cfg.ClockPeriod, 1},
		{EnvAnimationLength, &cfg.AnimationLength, 1},
		{EnvPointsPerRow, &cfg.PointsPerRow, 0},
	}
	for _, v := range ints {
		s, ok := lookup(v.name)
		if !ok || s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return engine.Config{}, fmt.Errorf("parsing %s: %w", v.name, err)
		}
		if n < v.min {
			return engine.Config{}, fmt.Errorf("%s must be at least %d, got %d", v.name, v.min, n)
		}
		*v.dst = n
	}

	cfg.Seed = time.Now().UnixNano()
	if s, ok := lookup(EnvSeed); ok && s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return engine.Config{}, fmt.Errorf("parsing %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}
