package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/handreplay/cmd/handreplay/shared"
	"github.com/lox/handreplay/internal/fileutil"
	"github.com/lox/handreplay/internal/phh"
	"github.com/lox/handreplay/internal/script"
)

// ExportCmd converts a hand script to a PHH TOML file.
type ExportCmd struct {
	File      string `arg:"" name:"file" help:"Hand script file" type:"existingfile"`
	TableSize int    `kong:"default='6',help='Number of seats at the table'"`
	Out       string `kong:"help='Output path (default: input with .phh extension, - for stdout)'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
}

func (c *ExportCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	hand, err := script.ParseFile(c.File, c.TableSize)
	if err != nil {
		return err
	}

	handID := strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File))
	record, err := phh.Build(hand, handID)
	if err != nil {
		return err
	}

	data, err := phh.EncodeToBytes(record)
	if err != nil {
		return err
	}

	out := c.Out
	if out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if out == "" {
		out = strings.TrimSuffix(c.File, filepath.Ext(c.File)) + ".phh"
	}

	if err := fileutil.WriteFileAtomic(out, data, 0644); err != nil {
		return err
	}

	logger.Info("Exported", "file", c.File, "out", out, "actions", len(record.Actions))
	return nil
}
