package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/handreplay/cmd/handreplay/shared"
	"github.com/lox/handreplay/internal/script"
)

// CheckCmd parses one or more hand scripts and reports the first error
// in each, with its line number.
type CheckCmd struct {
	Files     []string `arg:"" name:"files" help:"Hand script files" type:"existingfile"`
	TableSize int      `kong:"default='6',help='Number of seats at the table'"`
	Debug     bool     `kong:"help='Enable debug logging'"`
}

func (c *CheckCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var g errgroup.Group
	for _, file := range c.Files {
		g.Go(func() error {
			hand, err := script.ParseFile(file, c.TableSize)
			if err != nil {
				logger.Error("Parse failed", "file", file, "error", err)
				return fmt.Errorf("%s: %w", file, err)
			}

			known := 0
			for _, hole := range hand.HoleCards {
				if hole[0] != nil {
					known++
				}
			}
			logger.Info("OK",
				"file", file,
				"table_size", hand.TableSize,
				"actions", len(hand.Actions),
				"known_hands", known)
			return nil
		})
	}

	return g.Wait()
}
