package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/handreplay/cmd/handreplay/shared"
	"github.com/lox/handreplay/internal/deck"
	"github.com/lox/handreplay/internal/fileutil"
	"github.com/lox/handreplay/internal/randutil"
	"github.com/lox/handreplay/internal/script"
	"github.com/lox/handreplay/internal/seats"
)

// DealCmd deals a random hand and emits it as a script, for fixtures
// and demos.
type DealCmd struct {
	TableSize int    `kong:"default='6',help='Number of seats at the table'"`
	Seed      *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Out       string `kong:"help='Output path (default: stdout)'"`
}

func (c *DealCmd) Run() error {
	positions, err := seats.ActivePositions(c.TableSize)
	if err != nil {
		return err
	}

	rng := randutil.NewFromTime()
	seedNote := "random"
	if c.Seed != nil {
		rng = randutil.New(*c.Seed)
		seedNote = fmt.Sprintf("%d", *c.Seed)
	}

	d := deck.NewDeck(rng)
	d.Shuffle()

	var b strings.Builder
	fmt.Fprintf(&b, "# handreplay sample hand, %d seats, seed %s\n", c.TableSize, seedNote)

	for _, pos := range positions {
		hole := d.DealN(2)
		fmt.Fprintf(&b, "HAND %s %s %s\n", pos, hole[0], hole[1])
	}

	b.WriteString("\n")
	openAmount := float64(rng.IntN(8)+4) / 2 // 2.0 to 5.5 big blinds
	fmt.Fprintf(&b, "%s raise %g\n", positions[0], openAmount)
	for _, pos := range positions[1:] {
		if rng.IntN(2) == 0 {
			fmt.Fprintf(&b, "%s call %g\n", pos, openAmount)
		} else {
			fmt.Fprintf(&b, "%s fold\n", pos)
		}
	}

	flop := d.DealN(3)
	fmt.Fprintf(&b, "\nFLOP %s %s %s\n", flop[0], flop[1], flop[2])
	for _, pos := range positions {
		fmt.Fprintf(&b, "%s check\n", pos)
	}

	turn := d.DealN(1)
	fmt.Fprintf(&b, "\nTURN %s\n", turn[0])

	river := d.DealN(1)
	fmt.Fprintf(&b, "RIVER %s\n", river[0])

	// The generated script must parse with this module's own parser.
	if _, err := script.Parse(strings.Split(b.String(), "\n"), c.TableSize); err != nil {
		return fmt.Errorf("generated script failed to parse: %w", err)
	}

	if c.Out == "" {
		_, err := os.Stdout.WriteString(b.String())
		return err
	}

	if err := fileutil.WriteFileAtomic(c.Out, []byte(b.String()), 0644); err != nil {
		return err
	}
	shared.SetupLogger(false).Info("Wrote sample hand", "out", c.Out, "table_size", c.TableSize)
	return nil
}
