// Package replay steps through a parsed hand one action at a time,
// deriving what the renderer needs at each step: the board so far, the
// acting seat to highlight, and the raw line for the banner.
package replay

import (
	"github.com/lox/handreplay/internal/deck"
	"github.com/lox/handreplay/internal/script"
)

// Frame is the renderable view of one cursor position
type Frame struct {
	// Index is the cursor position in the action stream, -1 when the
	// hand has no actions
	Index int

	// Banner is the raw script line of the current action
	Banner string

	// Board holds the community cards dealt up to and including the
	// current action, flop first
	Board []deck.Card

	// Highlight is the acting seat when the current action is a player
	// move, nil for street deals
	Highlight *int
}

// State is a cursor over a hand's action stream. The underlying hand is
// never mutated; frames are recomputed from it on demand.
type State struct {
	hand  *script.ParsedHand
	index int
}

// NewState creates a cursor positioned on the first action
func NewState(hand *script.ParsedHand) *State {
	s := &State{hand: hand, index: -1}
	if len(hand.Actions) > 0 {
		s.index = 0
	}
	return s
}

// Hand returns the underlying parsed hand
func (s *State) Hand() *script.ParsedHand { return s.hand }

// Len returns the number of actions in the stream
func (s *State) Len() int { return len(s.hand.Actions) }

// Index returns the current cursor position, -1 for an empty stream
func (s *State) Index() int { return s.index }

// Next advances the cursor. It reports false at the end of the stream.
func (s *State) Next() bool {
	if s.index >= len(s.hand.Actions)-1 {
		return false
	}
	s.index++
	return true
}

// Prev steps the cursor back. It reports false at the start.
func (s *State) Prev() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// Frame computes the renderable view of the current position
func (s *State) Frame() Frame {
	frame := Frame{Index: s.index}
	if s.index < 0 {
		return frame
	}

	for i := 0; i <= s.index; i++ {
		if deal, ok := s.hand.Actions[i].(script.StreetDeal); ok {
			frame.Board = append(frame.Board, deal.Cards...)
		}
	}

	current := s.hand.Actions[s.index]
	frame.Banner = current.Raw()
	if move, ok := current.(script.PlayerMove); ok {
		seat := move.Seat
		frame.Highlight = &seat
	}
	return frame
}
