package game

import (
	"castle-generator/internal/generate"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds construction-time settings for one level.
type Config struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Strategy      string `yaml:"strategy"`
	MinRoomSize   int    `yaml:"min_room_size"`
	MaxRoomSize   int    `yaml:"max_room_size"`
	MaxAttempts   int    `yaml:"max_attempts"`
	MaxRooms      int    `yaml:"max_rooms"`
	ScatterTrials int    `yaml:"scatter_trials"`
	ViewRange     int    `yaml:"view_range"`
	// Seed for level generation. 0 asks the caller to pick one.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns an 80x50 rooms-and-corridors level with an 8-tile view.
func DefaultConfig() Config {
	g := generate.DefaultConfig()
	return Config{
		Width:         g.MapWidth,
		Height:        g.MapHeight,
		Strategy:      g.Strategy.String(),
		MinRoomSize:   g.MinRoomSize,
		MaxRoomSize:   g.MaxRoomSize,
		MaxAttempts:   g.MaxAttempts,
		MaxRooms:      g.MaxRooms,
		ScatterTrials: g.ScatterTrials,
		ViewRange:     8,
	}
}

// LoadConfigFile overlays the YAML file at path onto the defaults.
// Keys missing from the file keep their default values.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// envInts lists the integer settings read by ApplyEnv.
func (c *Config) envInts() map[string]*int {
	return map[string]*int{
		"CASTLE_WIDTH":          &c.Width,
		"CASTLE_HEIGHT":         &c.Height,
		"CASTLE_MIN_ROOM_SIZE":  &c.MinRoomSize,
		"CASTLE_MAX_ROOM_SIZE":  &c.MaxRoomSize,
		"CASTLE_ATTEMPTS":       &c.MaxAttempts,
		"CASTLE_MAX_ROOMS":      &c.MaxRooms,
		"CASTLE_SCATTER_TRIALS": &c.ScatterTrials,
		"CASTLE_VIEW_RANGE":     &c.ViewRange,
	}
}

// ApplyEnv overlays CASTLE_* variables looked up through getenv.
// Empty values are ignored. Keys are read in sorted order, so the first
// malformed one reported is always the same.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	ints := c.envInts()
	for _, key := range slices.Sorted(maps.Keys(ints)) {
		dst := ints[key]
		v := getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}
	if v := getenv("CASTLE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("CASTLE_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := getenv("CASTLE_STRATEGY"); v != "" {
		c.Strategy = v
	}
	return nil
}

// GeneratorConfig converts c into the level generator's parameters.
func (c Config) GeneratorConfig() (generate.Config, error) {
	strategy, err := generate.ParseStrategy(c.Strategy)
	if err != nil {
		return generate.Config{}, err
	}
	return generate.Config{
		MapWidth:      c.Width,
		MapHeight:     c.Height,
		Strategy:      strategy,
		MinRoomSize:   c.MinRoomSize,
		MaxRoomSize:   c.MaxRoomSize,
		MaxAttempts:   c.MaxAttempts,
		MaxRooms:      c.MaxRooms,
		ScatterTrials: c.ScatterTrials,
		Seed:          c.Seed,
	}, nil
}

// Validate checks every setting, including the generator's.
func (c Config) Validate() error {
	if c.ViewRange < 0 {
		return fmt.Errorf("%w: view range %d is negative", generate.ErrInvalidConfig, c.ViewRange)
	}
	g, err := c.GeneratorConfig()
	if err != nil {
		return err
	}
	return g.Validate()
}
