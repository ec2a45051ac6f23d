package script

import (
	"errors"
	"fmt"
)

// Classifier errors. Seat and card failures surface as
// seats.ErrUnknownSeat / seats.ErrSeatNotAtTable / deck.ErrInvalidCardToken;
// table-size validation uses seats.ErrInvalidTableSize.
var (
	// ErrMalformedHand is returned for a HAND line without exactly a
	// seat and two cards
	ErrMalformedHand = errors.New("malformed HAND line")

	// ErrMalformedStreet is returned for FLOP/TURN/RIVER lines with the
	// wrong number of card tokens
	ErrMalformedStreet = errors.New("malformed street line")

	// ErrUnknownVerb is returned when a move line's verb is not one of
	// raise, call, bet, check, fold
	ErrUnknownVerb = errors.New("unknown verb")

	// ErrInvalidAmount is returned when a move's amount token is not a
	// decimal, or when an amount accompanies check/fold
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMalformedMove is returned for move lines with a token count
	// other than two or three
	ErrMalformedMove = errors.New("malformed move line")
)

// LineError annotates a classifier failure with the 1-based line number
// and the offending line. errors.Is/As reach the wrapped cause.
type LineError struct {
	Line int
	Raw  string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Raw)
}

func (e *LineError) Unwrap() error { return e.Err }
