package seats

import (
	"errors"
	"testing"
)

func TestActivePositionsLengthAndLastSeat(t *testing.T) {
	for n := MinPlayers; n <= MaxPlayers; n++ {
		active, err := ActivePositions(n)
		if err != nil {
			t.Fatalf("ActivePositions(%d): %v", n, err)
		}
		if len(active) != n {
			t.Fatalf("ActivePositions(%d) has %d seats", n, len(active))
		}
		if active[n-1] != BB {
			t.Fatalf("ActivePositions(%d) last seat = %s, want BB", n, active[n-1])
		}
	}
}

func TestActivePositionsTrimOrder(t *testing.T) {
	tests := []struct {
		n    int
		want []Position
	}{
		{2, []Position{SB, BB}},
		{3, []Position{BTN, SB, BB}},
		{4, []Position{CO, BTN, SB, BB}},
		{5, []Position{HJ, CO, BTN, SB, BB}},
		{6, []Position{LJ, HJ, CO, BTN, SB, BB}},
		{7, []Position{UTG, LJ, HJ, CO, BTN, SB, BB}},
		{8, []Position{UTG, UTG1, LJ, HJ, CO, BTN, SB, BB}},
		{9, []Position{UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB}},
	}

	for _, tt := range tests {
		active, err := ActivePositions(tt.n)
		if err != nil {
			t.Fatalf("ActivePositions(%d): %v", tt.n, err)
		}
		if len(active) != len(tt.want) {
			t.Fatalf("ActivePositions(%d) = %v, want %v", tt.n, active, tt.want)
		}
		for i := range tt.want {
			if active[i] != tt.want[i] {
				t.Fatalf("ActivePositions(%d)[%d] = %s, want %s", tt.n, i, active[i], tt.want[i])
			}
		}
	}
}

func TestActivePositionsInvalidSize(t *testing.T) {
	for _, n := range []int{0, 1, 10, -3} {
		if _, err := ActivePositions(n); !errors.Is(err, ErrInvalidTableSize) {
			t.Fatalf("ActivePositions(%d) error = %v, want ErrInvalidTableSize", n, err)
		}
	}
}

func TestResolveAliases(t *testing.T) {
	tests := []struct {
		token string
		n     int
		want  int
	}{
		{"UTG1", 9, 1},
		{"UTG+1", 9, 1},
		{"UTG2", 9, 2},
		{"BUTTON", 6, 3},
		{"DEALER", 6, 3},
		{"D", 6, 3},
		{"btn", 6, 3},
		{"bb", 6, 5},
		{"utg", 7, 0},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.token, tt.n)
		if err != nil {
			t.Fatalf("Resolve(%q, %d): %v", tt.token, tt.n, err)
		}
		if got != tt.want {
			t.Fatalf("Resolve(%q, %d) = %d, want %d", tt.token, tt.n, got, tt.want)
		}
	}
}

func TestResolveHeadsUpButtonIsSmallBlind(t *testing.T) {
	btn, err := Resolve("BTN", 2)
	if err != nil {
		t.Fatal(err)
	}
	sb, err := Resolve("SB", 2)
	if err != nil {
		t.Fatal(err)
	}
	if btn != sb {
		t.Fatalf("heads-up BTN resolved to %d, SB to %d; want equal", btn, sb)
	}
	if btn != 0 {
		t.Fatalf("heads-up dealer seat = %d, want 0", btn)
	}

	for _, alias := range []string{"BUTTON", "DEALER", "D"} {
		got, err := Resolve(alias, 2)
		if err != nil {
			t.Fatalf("Resolve(%q, 2): %v", alias, err)
		}
		if got != sb {
			t.Fatalf("heads-up %s = %d, want %d", alias, got, sb)
		}
	}
}

func TestResolveUnknownSeat(t *testing.T) {
	if _, err := Resolve("XX", 6); !errors.Is(err, ErrUnknownSeat) {
		t.Fatalf("Resolve(XX) error = %v, want ErrUnknownSeat", err)
	}
}

// A real position that has been trimmed away is a distinct failure from
// a token that was never a position.
func TestResolveSeatNotAtTable(t *testing.T) {
	if _, err := Resolve("UTG+2", 6); !errors.Is(err, ErrSeatNotAtTable) {
		t.Fatalf("Resolve(UTG+2, 6) error = %v, want ErrSeatNotAtTable", err)
	}
	if _, err := Resolve("BTN", 2); errors.Is(err, ErrSeatNotAtTable) {
		t.Fatal("heads-up BTN should remap to SB, not fail")
	}
}

// Resolution must be pure: repeated identical calls return identical
// results and never mutate the shared tables.
func TestResolveDeterministic(t *testing.T) {
	first, err := Resolve("CO", 6)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		got, err := Resolve("CO", 6)
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("Resolve not deterministic: %d then %d", first, got)
		}
	}
}
