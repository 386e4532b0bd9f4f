package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"othello/searcher"
)

// Algorithm names accepted in configuration.
const (
	AlgorithmMinimax   = "minimax"
	AlgorithmAlphaBeta = "alphabeta"
)

// Config holds the driver and server settings.
type Config struct {
	// Depth is the number of plies the engine looks ahead.
	Depth int `yaml:"depth"`
	// Algorithm selects the search: "minimax" or "alphabeta".
	Algorithm string `yaml:"algorithm"`
	// Listen is the play server address.
	Listen string `yaml:"listen"`
}

// Default returns the settings the original console opponent used:
// alpha-beta at depth 3.
func Default() Config {
	return Config{
		Depth:     3,
		Algorithm: AlgorithmAlphaBeta,
		Listen:    ":8080",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.Depth)
	}
	switch c.Algorithm {
	case AlgorithmMinimax, AlgorithmAlphaBeta:
	default:
		return fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
	return nil
}

// NewSearcher builds the configured searcher.
func (c Config) NewSearcher(options ...searcher.Option) (searcher.Searcher, error) {
	switch c.Algorithm {
	case AlgorithmMinimax:
		return searcher.NewMinimax(c.Depth, options...), nil
	case AlgorithmAlphaBeta:
		return searcher.NewAlphaBeta(c.Depth, options...), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
}
