// Package phh encodes parsed hand scripts in the PHH (poker hand
// history) TOML format.
package phh

// HandHistory is a single hand in PHH form. Fields the script format
// cannot know (stacks, blinds) are emitted as zero-filled arrays so the
// record stays structurally valid PHH.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	SeatCount         int      `toml:"seat_count"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand,omitempty"`
}
