// Package config loads statespace settings from YAML and merges command-line
// overrides on top.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/astar"
	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/internal/logging"
)

var (
	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrNotFound is returned by Load when an explicitly named file does not exist.
	ErrNotFound = errors.New("config: file not found")
)

// Strategies lists the accepted strategy names.
var Strategies = []string{dfs.Name, bfs.Name, astar.Name}

// strategyKinds names the strategy each frontier kind drives.
var strategyKinds = map[frontier.Kind]string{
	dfs.Kind:   dfs.Name,
	bfs.Kind:   bfs.Name,
	astar.Kind: astar.Name,
}

// ResolveStrategy maps name to one of Strategies. Besides the strategy names
// it accepts the frontier kind behind each one, so "stack", "queue" and
// "priority" select dfs, bfs and astar.
func ResolveStrategy(name string) (string, error) {
	if core.LinearContains(Strategies, name) {
		return name, nil
	}
	kind, err := frontier.ParseKind(name)
	if err != nil {
		return "", fmt.Errorf("%w: unknown strategy %q (want one of %v or a frontier kind)", ErrInvalid, name, Strategies)
	}

	return strategyKinds[kind], nil
}

// Config is the full set of settings.
type Config struct {
	LogLevel     string             `yaml:"log_level" mapstructure:"log_level"`
	Color        bool               `yaml:"color" mapstructure:"color"`
	Search       SearchConfig       `yaml:"search" mapstructure:"search"`
	Maze         MazeConfig         `yaml:"maze" mapstructure:"maze"`
	Missionaries MissionariesConfig `yaml:"missionaries" mapstructure:"missionaries"`
}

// SearchConfig applies to every run.
type SearchConfig struct {
	// MaxExpansions bounds each run; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions" mapstructure:"max_expansions"`
}

// MazeConfig drives the maze command.
type MazeConfig struct {
	Rows       int     `yaml:"rows" mapstructure:"rows"`
	Columns    int     `yaml:"columns" mapstructure:"columns"`
	Sparseness float64 `yaml:"sparseness" mapstructure:"sparseness"`
	// Seed fixes the generated maze; 0 draws a fresh one each run.
	Seed     int64  `yaml:"seed" mapstructure:"seed"`
	Strategy string `yaml:"strategy" mapstructure:"strategy"`
}

// MissionariesConfig drives the missionaries command.
type MissionariesConfig struct {
	Population int    `yaml:"population" mapstructure:"population"`
	Strategy   string `yaml:"strategy" mapstructure:"strategy"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Color:    true,
		Maze: MazeConfig{
			Rows:       10,
			Columns:    10,
			Sparseness: 0.2,
			Strategy:   astar.Name,
		},
		Missionaries: MissionariesConfig{
			Population: 3,
			Strategy:   bfs.Name,
		},
	}
}

// Load reads YAML from path on top of Default. An empty path or an empty
// file yields the defaults. A path that does not exist is ErrNotFound, and
// unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Apply merges overrides, keyed like the YAML file ("maze" → {"rows": 5}),
// into c. Values are converted loosely, so flag strings such as "12" or
// "true" are accepted for numeric and boolean fields.
func (c *Config) Apply(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("config: apply overrides: %w", err)
	}

	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch {
	case c.Search.MaxExpansions < 0:
		return fmt.Errorf("%w: search.max_expansions must not be negative (%d)", ErrInvalid, c.Search.MaxExpansions)
	case c.Maze.Rows <= 0 || c.Maze.Columns <= 0:
		return fmt.Errorf("%w: maze size %d×%d", ErrInvalid, c.Maze.Rows, c.Maze.Columns)
	case c.Maze.Sparseness < 0 || c.Maze.Sparseness > 1:
		return fmt.Errorf("%w: maze.sparseness %v outside [0, 1]", ErrInvalid, c.Maze.Sparseness)
	case c.Missionaries.Population < 0:
		return fmt.Errorf("%w: missionaries.population must not be negative (%d)", ErrInvalid, c.Missionaries.Population)
	}
	for _, s := range []string{c.Maze.Strategy, c.Missionaries.Strategy} {
		if _, err := ResolveStrategy(s); err != nil {
			return err
		}
	}

	return nil
}
