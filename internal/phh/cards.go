package phh

import (
	"strings"

	"github.com/lox/handreplay/internal/deck"
)

// Notation returns the PHH spelling of a card: single-character rank
// (T, not 10) plus lowercase suit.
func Notation(card deck.Card) string {
	rank := card.Rank.String()
	if card.Rank == deck.Ten {
		rank = "T"
	}
	return rank + card.Suit.String()
}

// NotationJoined concatenates the PHH spellings of cards with no
// separator, the way PHH deal actions want them ("AhKhQh").
func NotationJoined(cards []deck.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(Notation(c))
	}
	return b.String()
}
