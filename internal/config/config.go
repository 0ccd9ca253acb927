// Package config loads the yatzy CLI configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultFile         = "yatzy.hcl"
	DefaultLogLevel     = "info"
	DefaultRollsPerTurn = 3
	DefaultTurns        = 10000
	DefaultWorkers      = 4
)

// Config is the complete CLI configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Game     *GameSettings   `hcl:"game,block"`
	Simulate *SimulateConfig `hcl:"simulate,block"`
}

// GameSettings controls how turns are rolled
type GameSettings struct {
	RollsPerTurn int    `hcl:"rolls_per_turn,optional"`
	Seed         *int64 `hcl:"seed,optional"`
}

// SimulateConfig controls the Monte Carlo simulator
type SimulateConfig struct {
	Turns   int    `hcl:"turns,optional"`
	Workers int    `hcl:"workers,optional"`
	Output  string `hcl:"output,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file yields Default().
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.RollsPerTurn == 0 {
		c.Game.RollsPerTurn = DefaultRollsPerTurn
	}
	if c.Simulate == nil {
		c.Simulate = &SimulateConfig{}
	}
	if c.Simulate.Turns == 0 {
		c.Simulate.Turns = DefaultTurns
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = DefaultWorkers
	}
}

// Validate checks value ranges after defaults have been applied
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Game.RollsPerTurn < 1 {
		return fmt.Errorf("game: rolls_per_turn must be at least 1, got %d", c.Game.RollsPerTurn)
	}
	if c.Simulate.Turns < 1 {
		return fmt.Errorf("simulate: turns must be at least 1, got %d", c.Simulate.Turns)
	}
	if c.Simulate.Workers < 1 {
		return fmt.Errorf("simulate: workers must be at least 1, got %d", c.Simulate.Workers)
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
