// Package seats resolves seat-position tokens against a table of a
// given size. The canonical nine-handed acting order is trimmed down
// for smaller tables using a fixed priority, so BTN/SB/BB survive the
// longest and BB is always the last seat to act.
package seats

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTableSize is returned for table sizes outside [2,9]
	ErrInvalidTableSize = errors.New("invalid table size")

	// ErrUnknownSeat is returned when a token is not a canonical
	// position name or a known alias
	ErrUnknownSeat = errors.New("unknown seat")

	// ErrSeatNotAtTable is returned when a canonical position has been
	// trimmed away at the requested table size
	ErrSeatNotAtTable = errors.New("seat not at table")
)

// Position is a named table slot with a fixed place in acting order
type Position string

const (
	UTG  Position = "UTG"
	UTG1 Position = "UTG+1"
	UTG2 Position = "UTG+2"
	LJ   Position = "LJ"
	HJ   Position = "HJ"
	CO   Position = "CO"
	BTN  Position = "BTN"
	SB   Position = "SB"
	BB   Position = "BB"
)

// Table size bounds
const (
	MinPlayers = 2
	MaxPlayers = 9
)

// canonicalOrder is the full nine-handed acting order, earliest first.
var canonicalOrder = [MaxPlayers]Position{UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB}

// trimPriority is the order in which seats are removed as the table
// shrinks below nine. Earliest-acting seats go first; the blinds never
// trim.
var trimPriority = [MaxPlayers - MinPlayers]Position{UTG2, UTG1, UTG, LJ, HJ, CO, BTN}

// aliases maps accepted alternate spellings to canonical positions.
var aliases = map[string]Position{
	"UTG1":   UTG1,
	"UTG2":   UTG2,
	"BUTTON": BTN,
	"DEALER": BTN,
	"D":      BTN,
}

// activeBySize[n] holds ActivePositions(n), built once at init and
// treated as read-only afterwards.
var activeBySize = buildActiveTable()

func buildActiveTable() [MaxPlayers + 1][]Position {
	var table [MaxPlayers + 1][]Position
	for n := MinPlayers; n <= MaxPlayers; n++ {
		trimmed := make(map[Position]bool, MaxPlayers-n)
		for _, pos := range trimPriority[:MaxPlayers-n] {
			trimmed[pos] = true
		}
		active := make([]Position, 0, n)
		for _, pos := range canonicalOrder {
			if !trimmed[pos] {
				active = append(active, pos)
			}
		}
		table[n] = active
	}
	return table
}

// ActivePositions returns the n seats in play at an n-handed table, in
// acting order (earliest first, BB last). The returned slice is shared
// read-only state; callers must not modify it.
func ActivePositions(n int) ([]Position, error) {
	if n < MinPlayers || n > MaxPlayers {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTableSize, n)
	}
	return activeBySize[n], nil
}

// Normalize maps a raw token to a canonical position, applying alias
// spellings. The second return is false when the token is not a seat.
func Normalize(token string) (Position, bool) {
	upper := strings.ToUpper(strings.TrimSpace(token))
	if pos, ok := aliases[upper]; ok {
		return pos, true
	}
	for _, pos := range canonicalOrder {
		if Position(upper) == pos {
			return pos, true
		}
	}
	return "", false
}

// Resolve maps a seat token to its 0-based index in acting order at an
// n-handed table. Heads-up the dealer posts the small blind, so any
// BTN-equivalent token resolves to the SB seat when n == 2.
func Resolve(token string, n int) (int, error) {
	active, err := ActivePositions(n)
	if err != nil {
		return 0, err
	}

	pos, ok := Normalize(token)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownSeat, token)
	}

	if n == MinPlayers && pos == BTN {
		pos = SB
	}

	for i, p := range active {
		if p == pos {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s is not dealt in at a %d-handed table", ErrSeatNotAtTable, pos, n)
}
