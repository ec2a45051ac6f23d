package main

import (
	"github.com/lox/handreplay/cmd/handreplay/shared"
	"github.com/lox/handreplay/internal/config"
	"github.com/lox/handreplay/internal/script"
	"github.com/lox/handreplay/internal/tui"
)

// ViewCmd replays a hand script in the terminal.
type ViewCmd struct {
	File      string `arg:"" name:"file" help:"Hand script file" type:"existingfile"`
	TableSize int    `kong:"help='Number of seats at the table (overrides config)'"`
	Config    string `kong:"default='handreplay.hcl',help='Viewer config file (HCL)'"`
}

func (c *ViewCmd) Run() error {
	// The TUI owns the terminal, so nothing may log to stderr.
	logger := shared.SetupQuietLogger()

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.TableSize != 0 {
		cfg.Replay.TableSize = c.TableSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	hand, err := script.ParseFile(c.File, cfg.Replay.TableSize)
	if err != nil {
		return err
	}

	styles := tui.DefaultStyles(cfg.Theme.Highlight, cfg.Theme.RedCard, cfg.Theme.BlackCard)
	return tui.Run(hand, styles, logger)
}
