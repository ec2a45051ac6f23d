package phh

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/handreplay/internal/script"
	"github.com/lox/handreplay/internal/seats"
)

// Build converts a parsed hand into a PHH record. Hole-card deals come
// first (in seat order, skipping unknown hands), then the action
// stream in input order. Player names are the position names at the
// hand's table size.
func Build(hand *script.ParsedHand, handID string) (*HandHistory, error) {
	positions, err := seats.ActivePositions(hand.TableSize)
	if err != nil {
		return nil, err
	}

	players := make([]string, hand.TableSize)
	for i, pos := range positions {
		players[i] = string(pos)
	}

	actions := make([]string, 0, hand.TableSize+len(hand.Actions))
	for seat, hole := range hand.HoleCards {
		if hole[0] == nil || hole[1] == nil {
			continue
		}
		actions = append(actions, fmt.Sprintf("d dh p%d %s%s", seat+1, Notation(*hole[0]), Notation(*hole[1])))
	}

	for _, action := range hand.Actions {
		switch a := action.(type) {
		case script.StreetDeal:
			actions = append(actions, "d db "+NotationJoined(a.Cards))
		case script.PlayerMove:
			if formatted, ok := FormatMove(a.Seat, a.Verb, a.Amount); ok {
				actions = append(actions, formatted)
			}
		default:
			return nil, fmt.Errorf("phh: unhandled action type %s", action.ActionType())
		}
	}

	return &HandHistory{
		Variant:           "NT",
		SeatCount:         hand.TableSize,
		Antes:             make([]int, hand.TableSize),
		BlindsOrStraddles: make([]int, hand.TableSize),
		StartingStacks:    make([]int, hand.TableSize),
		Actions:           actions,
		Players:           players,
		HandID:            handID,
	}, nil
}

// FormatMove converts a player move to the PHH action vocabulary. The
// second return is false when the move cannot be expressed (a bet or
// raise without an amount has no PHH spelling).
func FormatMove(seat int, verb script.Verb, amount *float64) (string, bool) {
	player := fmt.Sprintf("p%d", seat+1)
	switch verb {
	case script.Fold:
		return player + " f", true
	case script.Check, script.Call:
		return player + " cc", true
	case script.Bet, script.Raise:
		if amount == nil {
			return "", false
		}
		return fmt.Sprintf("%s cbr %s", player, strconv.FormatFloat(*amount, 'f', -1, 64)), true
	default:
		return "", false
	}
}

// Encode writes the hand history to w in PHH TOML form.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
