// Package config holds the tunable parameters of a wumpus world and the
// planners that run on it.
package config

import (
	"errors"
	"fmt"
	"os"
	"wumpus/meta"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Seed   uint64 `yaml:"seed"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	Wumpuses int `yaml:"wumpuses"`
	Pits     int `yaml:"pits"`
	Gold     int `yaml:"gold"`

	// Dynamic makes hazards react to the avatar every turn.
	Dynamic bool `yaml:"dynamic"`
	// NonDeterministic lets avatar moves slip sideways.
	NonDeterministic     bool    `yaml:"non_deterministic"`
	DirectionProbability float64 `yaml:"direction_probability"`
	SenseDistance        float64 `yaml:"sense_distance"`

	MaxTurns   int    `yaml:"max_turns"`
	DepthLimit int    `yaml:"depth_limit"`
	Strategy   string `yaml:"strategy"`
}

func Default() Config {
	return Config{
		Seed:                 meta.SEED,
		Width:                meta.WIDTH,
		Height:               meta.HEIGHT,
		Wumpuses:             meta.WUMPUSES,
		Pits:                 meta.PITS,
		Gold:                 meta.GOLD,
		DirectionProbability: meta.DIRECTION_PROBABILITY,
		SenseDistance:        meta.SENSE_DISTANCE,
		MaxTurns:             meta.MAX_TURNS,
		DepthLimit:           meta.DEPTH_LIMIT,
		Strategy:             "astar",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Wumpuses < 0 || c.Pits < 0 || c.Gold < 0 {
		return fmt.Errorf("%w: counts must not be negative", ErrInvalid)
	}
	// every entity plus the avatar needs its own cell
	if need := c.Wumpuses + c.Pits + c.Gold + 1; need > c.Width*c.Height {
		return fmt.Errorf("%w: %d entities do not fit on a %dx%d grid", ErrInvalid, need, c.Width, c.Height)
	}
	if c.DirectionProbability < 0 || c.DirectionProbability > 1 {
		return fmt.Errorf("%w: direction_probability %v outside [0,1]", ErrInvalid, c.DirectionProbability)
	}
	if c.SenseDistance < 0 {
		return fmt.Errorf("%w: sense_distance must not be negative", ErrInvalid)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: max_turns must be positive", ErrInvalid)
	}
	if c.DepthLimit < 0 {
		return fmt.Errorf("%w: depth_limit must not be negative", ErrInvalid)
	}
	return nil
}
