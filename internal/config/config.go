// Package config loads viewer configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handreplay/internal/seats"
)

// Config is the complete viewer configuration
type Config struct {
	Replay *ReplaySettings `hcl:"replay,block"`
	Theme  *ThemeSettings  `hcl:"theme,block"`
}

// ReplaySettings controls parsing and playback
type ReplaySettings struct {
	// TableSize is the number of seats dealt in
	TableSize int `hcl:"table_size,optional"`

	// AutoplayMs is the autoplay interval in milliseconds
	AutoplayMs int `hcl:"autoplay_ms,optional"`
}

// ThemeSettings holds viewer colors as hex strings
type ThemeSettings struct {
	Highlight string `hcl:"highlight,optional"`
	RedCard   string `hcl:"red_card,optional"`
	BlackCard string `hcl:"black_card,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Replay: &ReplaySettings{
			TableSize:  6,
			AutoplayMs: 800,
		},
		Theme: &ThemeSettings{
			Highlight: "#FFD700",
			RedCard:   "#FF6B6B",
			BlackCard: "#FAFAFA",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present file has defaults applied to any unset values.
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

	applyDefaults(&cfg)
	return &cfg, nil
}

// Parse decodes configuration from HCL source, for tests and embedded
// config.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Replay == nil {
		cfg.Replay = def.Replay
	}
	if cfg.Theme == nil {
		cfg.Theme = def.Theme
	}
	if cfg.Replay.TableSize == 0 {
		cfg.Replay.TableSize = def.Replay.TableSize
	}
	if cfg.Replay.AutoplayMs == 0 {
		cfg.Replay.AutoplayMs = def.Replay.AutoplayMs
	}
	if cfg.Theme.Highlight == "" {
		cfg.Theme.Highlight = def.Theme.Highlight
	}
	if cfg.Theme.RedCard == "" {
		cfg.Theme.RedCard = def.Theme.RedCard
	}
	if cfg.Theme.BlackCard == "" {
		cfg.Theme.BlackCard = def.Theme.BlackCard
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Replay.TableSize < seats.MinPlayers || c.Replay.TableSize > seats.MaxPlayers {
		return fmt.Errorf("table_size must be between %d and %d, got %d", seats.MinPlayers, seats.MaxPlayers, c.Replay.TableSize)
	}
	if c.Replay.AutoplayMs <= 0 {
		return fmt.Errorf("autoplay_ms must be positive, got %d", c.Replay.AutoplayMs)
	}
	return nil
}
