// Package tui renders a parsed hand as an interactive terminal replay:
// seats with hole cards, the board as it develops, and a banner showing
// the current script line, with the acting seat highlighted.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/handreplay/internal/deck"
	"github.com/lox/handreplay/internal/replay"
	"github.com/lox/handreplay/internal/script"
	"github.com/lox/handreplay/internal/seats"
)

// Model is the Bubble Tea model for the replay viewer
type Model struct {
	state     *replay.State
	positions []seats.Position
	styles    Styles
	logger    *log.Logger

	// timeline lists the raw line of every action
	timeline viewport.Model

	width       int
	height      int
	initialized bool
	quitting    bool
}

// New creates a viewer over hand. The caller is expected to have
// validated the hand already; position lookup cannot fail for a parsed
// hand's table size.
func New(hand *script.ParsedHand, styles Styles, logger *log.Logger) (*Model, error) {
	positions, err := seats.ActivePositions(hand.TableSize)
	if err != nil {
		return nil, err
	}

	vp := viewport.New(30, 8)

	m := &Model{
		state:     replay.NewState(hand),
		positions: positions,
		styles:    styles,
		logger:    logger.WithPrefix("tui"),
		timeline:  vp,
	}
	m.refreshTimeline()
	return m, nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timeline.Width = msg.Width - 4
		m.timeline.Height = max(4, msg.Height-m.fixedHeight())
		m.initialized = true
		m.refreshTimeline()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "right", "l", " ", "n":
			if m.state.Next() {
				m.refreshTimeline()
			}
		case "left", "h", "p":
			if m.state.Prev() {
				m.refreshTimeline()
			}
		case "home", "g":
			for m.state.Prev() {
			}
			m.refreshTimeline()
		case "end", "G":
			for m.state.Next() {
			}
			m.refreshTimeline()
		}
	}

	var cmd tea.Cmd
	m.timeline, cmd = m.timeline.Update(msg)
	return m, cmd
}

// View renders the viewer
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	frame := m.state.Frame()

	var b strings.Builder

	banner := frame.Banner
	if banner == "" {
		banner = "(no actions)"
	}
	b.WriteString(m.styles.Banner.Render(fmt.Sprintf("%d/%d  %s", frame.Index+1, m.state.Len(), banner)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Board.Render("Board: "))
	if len(frame.Board) == 0 {
		b.WriteString(m.styles.Help.Render("(none)"))
	} else {
		b.WriteString(m.renderCards(frame.Board))
	}
	b.WriteString("\n\n")

	hand := m.state.Hand()
	for seat, pos := range m.positions {
		style := m.styles.Seat
		marker := "  "
		if frame.Highlight != nil && *frame.Highlight == seat {
			style = m.styles.SeatAct
			marker = "► "
		}
		b.WriteString(marker)
		b.WriteString(style.Render(fmt.Sprintf("%-5s", pos)))
		b.WriteString(" ")
		b.WriteString(m.renderHole(hand.HoleCards[seat]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.timeline.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("←/→ step · g/G first/last · q quit"))

	return b.String()
}

// Run starts the viewer and blocks until it exits
func Run(hand *script.ParsedHand, styles Styles, logger *log.Logger) error {
	model, err := New(hand, styles, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// fixedHeight is the vertical space used outside the timeline viewport
func (m *Model) fixedHeight() int {
	return len(m.positions) + 8
}

// refreshTimeline rebuilds the timeline content with the current action
// marked, keeping it scrolled into view.
func (m *Model) refreshTimeline() {
	hand := m.state.Hand()
	index := m.state.Index()

	lines := make([]string, 0, len(hand.Actions))
	for i, action := range hand.Actions {
		prefix := "  "
		line := action.Raw()
		if i == index {
			prefix = "► "
			line = m.styles.SeatAct.Render(line)
		}
		lines = append(lines, prefix+line)
	}
	m.timeline.SetContent(strings.Join(lines, "\n"))

	if index >= 0 {
		m.timeline.SetYOffset(max(0, index-m.timeline.Height+1))
	}
}

func (m *Model) renderHole(hole [2]*deck.Card) string {
	parts := make([]string, 0, 2)
	for _, card := range hole {
		if card == nil {
			parts = append(parts, m.styles.Help.Render("??"))
			continue
		}
		parts = append(parts, m.renderCard(*card))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, m.renderCard(card))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderCard(card deck.Card) string {
	if card.IsRed() {
		return m.styles.RedCard.Render(card.Pretty())
	}
	return m.styles.BlackCard.Render(card.Pretty())
}
