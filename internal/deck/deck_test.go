package deck

import (
	"testing"

	"github.com/lox/handreplay/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := NewDeck(randutil.New(1))
	if d.Remaining() != 52 {
		t.Fatalf("new deck has %d cards, want 52", d.Remaining())
	}

	seen := make(map[Card]bool)
	for {
		card, ok := d.Deal()
		if !ok {
			break
		}
		if seen[card] {
			t.Fatalf("duplicate card dealt: %v", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Fatalf("dealt %d unique cards, want 52", len(seen))
	}
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	a := NewDeck(randutil.New(42))
	b := NewDeck(randutil.New(42))
	a.Shuffle()
	b.Shuffle()

	for a.Remaining() > 0 {
		ca, _ := a.Deal()
		cb, _ := b.Deal()
		if ca != cb {
			t.Fatalf("same seed produced different shuffles: %v vs %v", ca, cb)
		}
	}
}

func TestDealN(t *testing.T) {
	d := NewDeck(randutil.New(7))
	cards := d.DealN(5)
	if len(cards) != 5 {
		t.Fatalf("DealN(5) returned %d cards", len(cards))
	}
	if d.Remaining() != 47 {
		t.Fatalf("expected 47 remaining, got %d", d.Remaining())
	}

	rest := d.DealN(100)
	if len(rest) != 47 {
		t.Fatalf("DealN past end returned %d cards, want 47", len(rest))
	}
	if d.Remaining() != 0 {
		t.Fatalf("deck should be empty, has %d", d.Remaining())
	}
}
