// Package script parses hand-script text into a structured, time-ordered
// event log for the replay layer.
//
// The grammar is line oriented; keywords are case-insensitive, blank
// lines and #-comments are skipped:
//
//	HAND <SEAT> <CARD> <CARD>
//	FLOP <CARD> <CARD> <CARD>
//	TURN <CARD>
//	RIVER <CARD>
//	<SEAT> <raise|call|bet|check|fold> [AMOUNT]
//
// Parsing is a pure function of the input: a single linear pass that
// either yields a complete ParsedHand or fails with one LineError.
// No betting legality is checked; validation is syntactic and
// positional only.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lox/handreplay/internal/deck"
	"github.com/lox/handreplay/internal/seats"
)

// Parse parses the script lines for a table of tableSize seats. The
// table size is validated before any line is read. Line numbers in
// errors are 1-based over the input, counting skipped lines.
func Parse(lines []string, tableSize int) (*ParsedHand, error) {
	if tableSize < seats.MinPlayers || tableSize > seats.MaxPlayers {
		return nil, fmt.Errorf("%w: %d", seats.ErrInvalidTableSize, tableSize)
	}

	hand := &ParsedHand{
		TableSize: tableSize,
		HoleCards: make([][2]*deck.Card, tableSize),
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := classify(hand, line); err != nil {
			return nil, &LineError{Line: i + 1, Raw: line, Err: err}
		}
	}

	return hand, nil
}

// ParseReader reads the full line source and parses it.
func ParseReader(r io.Reader, tableSize int) (*ParsedHand, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(lines, tableSize)
}

// ParseFile parses the script at path.
func ParseFile(path string, tableSize int) (*ParsedHand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, tableSize)
}

// classify dispatches one retained line on its first token and either
// records hole cards or appends an action.
func classify(hand *ParsedHand, line string) error {
	fields := strings.Fields(line)

	switch strings.ToUpper(fields[0]) {
	case "HAND":
		return classifyHand(hand, fields)
	case "FLOP":
		return classifyStreet(hand, Flop, fields, line)
	case "TURN":
		return classifyStreet(hand, Turn, fields, line)
	case "RIVER":
		return classifyStreet(hand, River, fields, line)
	default:
		return classifyMove(hand, fields, line)
	}
}

// classifyHand handles `HAND <seat> <card> <card>`. Hole cards are hand
// setup, not a timeline event, so no action is emitted.
func classifyHand(hand *ParsedHand, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("%w: want HAND <seat> <card> <card>, got %d tokens", ErrMalformedHand, len(fields))
	}

	seat, err := seats.Resolve(fields[1], hand.TableSize)
	if err != nil {
		return err
	}

	first, err := deck.ParseCard(fields[2])
	if err != nil {
		return err
	}
	second, err := deck.ParseCard(fields[3])
	if err != nil {
		return err
	}

	hand.HoleCards[seat][0] = &first
	hand.HoleCards[seat][1] = &second
	return nil
}

// classifyStreet handles FLOP/TURN/RIVER deals. The flop takes three
// cards, turn and river exactly one.
func classifyStreet(hand *ParsedHand, street Street, fields []string, line string) error {
	want := 1
	if street == Flop {
		want = 3
	}
	if len(fields) != want+1 {
		return fmt.Errorf("%w: %s wants %d card(s), got %d token(s)", ErrMalformedStreet, strings.ToUpper(string(street)), want, len(fields)-1)
	}

	cards := make([]deck.Card, 0, want)
	for _, tok := range fields[1:] {
		card, err := deck.ParseCard(tok)
		if err != nil {
			return err
		}
		cards = append(cards, card)
	}

	hand.Actions = append(hand.Actions, NewStreetDeal(street, cards, line))
	return nil
}

// classifyMove handles `<seat> <verb> [amount]`. An amount is legal
// only with bet, raise or call and is never defaulted when absent.
func classifyMove(hand *ParsedHand, fields []string, line string) error {
	if len(fields) != 2 && len(fields) != 3 {
		return fmt.Errorf("%w: want <seat> <verb> [amount], got %d tokens", ErrMalformedMove, len(fields))
	}

	seat, err := seats.Resolve(fields[0], hand.TableSize)
	if err != nil {
		return err
	}

	verb, ok := ParseVerb(strings.ToLower(fields[1]))
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownVerb, fields[1])
	}

	var amount *float64
	if len(fields) == 3 {
		if !verb.TakesAmount() {
			return fmt.Errorf("%w: %s does not take an amount", ErrInvalidAmount, verb)
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("%w %q", ErrInvalidAmount, fields[2])
		}
		amount = &value
	}

	hand.Actions = append(hand.Actions, NewPlayerMove(seat, verb, amount, line))
	return nil
}
