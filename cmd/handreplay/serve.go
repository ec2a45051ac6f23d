package main

import (
	"context"
	"time"

	"github.com/lox/handreplay/cmd/handreplay/shared"
	"github.com/lox/handreplay/internal/config"
	"github.com/lox/handreplay/internal/script"
	"github.com/lox/handreplay/internal/stream"
)

// ServeCmd streams a hand's replay frames to websocket clients.
type ServeCmd struct {
	File      string `arg:"" name:"file" help:"Hand script file" type:"existingfile"`
	Addr      string `kong:"default=':8080',help='Listen address'"`
	TableSize int    `kong:"help='Number of seats at the table (overrides config)'"`
	Config    string `kong:"default='handreplay.hcl',help='Viewer config file (HCL)'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

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

	interval := time.Duration(cfg.Replay.AutoplayMs) * time.Millisecond
	logger.Info("Serving hand replay",
		"file", c.File,
		"table_size", hand.TableSize,
		"actions", len(hand.Actions),
		"interval", interval)

	ctx := shared.SetupSignalHandler(logger)
	srv := stream.NewServer(hand, interval, logger)
	if err := srv.ListenAndServe(ctx, c.Addr); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
