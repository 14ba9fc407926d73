// Package config loads the optional HCL settings file for the blackjack CLI.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete CLI configuration
type Config struct {
	UI   *UISettings   `hcl:"ui,block"`
	Game *GameSettings `hcl:"game,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	// LogFile enables file logging; empty keeps the game from writing any file
	LogFile string `hcl:"log_file,optional"`
	Color    *bool  `hcl:"color,optional"`
}

// GameSettings contains settings for dealing. Rules themselves are fixed.
type GameSettings struct {
	// Seed fixes the shuffle; zero seeds from the clock
	Seed int64 `hcl:"seed,optional"`
}

// Default returns the default configuration
func Default() *Config {
	color := true
	return &Config{
		UI: &UISettings{
			LogLevel: "warn",
			Color:    &color,
		},
		Game: &GameSettings{},
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.UI == nil {
		cfg.UI = defaults.UI
	}
	if cfg.Game == nil {
		cfg.Game = defaults.Game
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.Color == nil {
		cfg.UI.Color = defaults.UI.Color
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// ColorEnabled reports whether styled output is enabled
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}
