// Package config loads server configuration from YAML files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/sokoengine/pkg/engine"
)

// Config is the full server configuration. Fields left out of the file keep
// their defaults.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Solver SolverConfig `yaml:"solver"`
	Levels LevelsConfig `yaml:"levels"`
}

// ServerConfig holds the HTTP listener and worker pool settings.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	FastWorkers    int      `yaml:"fast_workers"`
	SlowWorkers    int      `yaml:"slow_workers"`
}

// SolverConfig holds the default solve bounds. Per-request options override
// these.
type SolverConfig struct {
	Algorithm        string `yaml:"algorithm"`
	TimeLimitSeconds int    `yaml:"time_limit_seconds"`
	MaxIterations    int    `yaml:"max_iterations"`
}

// LevelsConfig points at the level collection served to clients.
type LevelsConfig struct {
	Collection string `yaml:"collection"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			FastWorkers: 16,
			SlowWorkers: 4,
		},
		Solver: SolverConfig{
			Algorithm:        string(engine.AlgorithmAStar),
			TimeLimitSeconds: 60,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.FastWorkers < 1 || c.Server.SlowWorkers < 1 {
		return fmt.Errorf("worker counts must be at least 1")
	}
	if _, err := engine.ParseAlgorithm(c.Solver.Algorithm); err != nil {
		return err
	}
	if c.Solver.TimeLimitSeconds < 0 || c.Solver.MaxIterations < 0 {
		return fmt.Errorf("solver bounds must not be negative")
	}
	return nil
}

// SolverOptions converts the configured defaults into engine options.
func (c Config) SolverOptions() engine.Options {
	alg, err := engine.ParseAlgorithm(c.Solver.Algorithm)
	if err != nil {
		alg = engine.AlgorithmAStar
	}
	opts := engine.DefaultOptions(alg)
	if c.Solver.TimeLimitSeconds > 0 {
		opts.TimeLimit = time.Duration(c.Solver.TimeLimitSeconds) * time.Second
	}
	if c.Solver.MaxIterations > 0 {
		opts.MaxIterations = c.Solver.MaxIterations
	}
	return opts
}
