// Package deck provides the card model for hand scripts: rank/suit
// enums, token parsing, and a deck for generating fixture hands.
package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidCardToken is returned when a token is not a rank immediately
// followed by a suit (e.g. "Ah", "10c").
var ErrInvalidCardToken = errors.New("invalid card token")

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the canonical (lowercase) suit letter
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph for display
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the canonical (uppercase) rank token. Ten is "10" to
// match the script grammar; ParseCard also accepts "T".
func (r Rank) String() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + int(r)))
		}
		return "?"
	}
}

// Card represents a playing card. Cards are value types compared with ==.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the canonical form: uppercase rank, lowercase suit
// (e.g. "Ah", "10c").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the display form with a suit glyph (e.g. "A♥")
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a single card token. The token must be a rank ("10"
// or one of 23456789TJQKA, case-insensitive) immediately followed by a
// suit (one of cdhs, case-insensitive) with no separator. Equivalent
// tokens parse to identical Card values.
func ParseCard(token string) (Card, error) {
	if len(token) < 2 || len(token) > 3 {
		return Card{}, wrapToken(token)
	}

	suit, ok := parseSuit(token[len(token)-1])
	if !ok {
		return Card{}, wrapToken(token)
	}

	rank, ok := parseRank(token[:len(token)-1])
	if !ok {
		return Card{}, wrapToken(token)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func parseSuit(b byte) (Suit, bool) {
	switch b {
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	default:
		return 0, false
	}
}

func parseRank(tok string) (Rank, bool) {
	if tok == "10" {
		return Ten, true
	}
	if len(tok) != 1 {
		return 0, false
	}
	switch tok[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(tok[0] - '0'), true
	case 't', 'T':
		return Ten, true
	case 'j', 'J':
		return Jack, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	case 'a', 'A':
		return Ace, true
	default:
		return 0, false
	}
}

func wrapToken(token string) error {
	return fmt.Errorf("%w %q", ErrInvalidCardToken, token)
}
