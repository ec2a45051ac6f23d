package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/handreplay/internal/script"
)

func newTestModel(t *testing.T, lines []string, n int) *Model {
	t.Helper()
	hand, err := script.Parse(lines, n)
	require.NoError(t, err)

	logger := log.NewWithOptions(io.Discard, log.Options{})
	m, err := New(hand, DefaultStyles("#FFD700", "#FF6B6B", "#FAFAFA"), logger)
	require.NoError(t, err)
	return m
}

func TestViewShowsSeatsAndHoleCards(t *testing.T) {
	m := newTestModel(t, []string{
		"HAND BTN Ah Kh",
		"BTN raise 3",
	}, 6)

	view := m.View()
	for _, pos := range []string{"LJ", "HJ", "CO", "BTN", "SB", "BB"} {
		require.Contains(t, view, pos)
	}
	require.Contains(t, view, "A♥")
	require.Contains(t, view, "K♥")
	require.Contains(t, view, "??", "unknown hole cards render as placeholders")
	require.Contains(t, view, "BTN raise 3")
}

func TestKeysStepTheReplay(t *testing.T) {
	m := newTestModel(t, []string{
		"BTN raise 3",
		"BB call 3",
		"FLOP 7h 8h 9h",
	}, 6)

	step := func(key string) {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		m = model.(*Model)
	}

	require.NotContains(t, m.View(), "7♥")

	step("n")
	step("n")
	view := m.View()
	require.Contains(t, view, "7♥")
	require.Contains(t, view, "FLOP 7h 8h 9h")

	step("p")
	require.NotContains(t, m.View(), "7♥", "stepping back hides the flop again")

	step("G")
	require.Contains(t, m.View(), "3/3")
	step("g")
	require.Contains(t, m.View(), "1/3")
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, []string{"BTN check"}, 6)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = model.(*Model)
	require.NotNil(t, cmd, "q should produce a quit command")
	require.True(t, m.quitting)
}

func TestEmptyTimelineView(t *testing.T) {
	m := newTestModel(t, []string{"HAND BB 2c 3d"}, 2)
	view := m.View()
	require.Contains(t, view, "(no actions)")
	require.False(t, strings.Contains(view, "►"), "no action marker without actions")
}
