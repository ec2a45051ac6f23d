package script

import (
	"github.com/lox/handreplay/internal/deck"
)

// Street is a community-card betting round
type Street string

const (
	Flop  Street = "flop"
	Turn  Street = "turn"
	River Street = "river"
)

// Verb is a player action keyword
type Verb string

const (
	Raise Verb = "raise"
	Call  Verb = "call"
	Bet   Verb = "bet"
	Check Verb = "check"
	Fold  Verb = "fold"
)

// ParseVerb maps a lowercase token to a Verb. The second return is
// false for anything outside the action vocabulary.
func ParseVerb(token string) (Verb, bool) {
	switch Verb(token) {
	case Raise, Call, Bet, Check, Fold:
		return Verb(token), true
	default:
		return "", false
	}
}

// TakesAmount reports whether the verb may carry a chip amount
func (v Verb) TakesAmount() bool {
	return v == Raise || v == Call || v == Bet
}

// ActionType discriminates the Action variants
type ActionType string

const (
	ActionTypeStreetDeal ActionType = "street_deal"
	ActionTypePlayerMove ActionType = "player_move"
)

// Action is a single entry in a hand's timeline. It is a closed sum of
// StreetDeal and PlayerMove: a street deal never carries a seat, and a
// player move never carries board cards.
type Action interface {
	ActionType() ActionType

	// Raw returns the script line the action was parsed from
	Raw() string
}

// StreetDeal records community cards hitting the board: three for the
// flop, one for the turn or river.
type StreetDeal struct {
	Street Street
	Cards  []deck.Card

	raw string
}

// NewStreetDeal creates a street-deal action
func NewStreetDeal(street Street, cards []deck.Card, raw string) StreetDeal {
	copied := make([]deck.Card, len(cards))
	copy(copied, cards)
	return StreetDeal{Street: street, Cards: copied, raw: raw}
}

func (d StreetDeal) ActionType() ActionType { return ActionTypeStreetDeal }
func (d StreetDeal) Raw() string            { return d.raw }

// PlayerMove records a player acting. Amount is nil unless the script
// line carried an explicit numeric token; it is never defaulted to zero.
type PlayerMove struct {
	Seat   int
	Verb   Verb
	Amount *float64

	raw string
}

// NewPlayerMove creates a player-move action
func NewPlayerMove(seat int, verb Verb, amount *float64, raw string) PlayerMove {
	return PlayerMove{Seat: seat, Verb: verb, Amount: amount, raw: raw}
}

func (m PlayerMove) ActionType() ActionType { return ActionTypePlayerMove }
func (m PlayerMove) Raw() string            { return m.raw }

// ParsedHand is the parse result: the hole-card matrix plus the
// time-ordered action stream. Treat it as an immutable snapshot; a
// re-parse produces a new value rather than mutating an old one.
type ParsedHand struct {
	// TableSize is the number of seats dealt in, in [2,9]
	TableSize int

	// HoleCards has one row per seat in acting order; nil entries are
	// unknown cards
	HoleCards [][2]*deck.Card

	// Actions is ordered exactly as the input lines were
	Actions []Action
}
