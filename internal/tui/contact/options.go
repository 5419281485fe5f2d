package contact

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/gcloudgt/contacto/internal/catalog"
	"github.com/gcloudgt/contacto/internal/tui/theme"
)

const cardGap = 1

// OptionGrid shows catalog entries as a grid of cards with a cursor.
type OptionGrid struct {
	entries  []catalog.Entry
	selected string // previously chosen id, highlighted
	cursor   int
	focused  bool
	width    int
}

// NewOptionGrid creates a grid with the cursor on the selected entry, or on
// the first one when nothing was chosen yet.
func NewOptionGrid(entries []catalog.Entry, selected string) *OptionGrid {
	g := &OptionGrid{entries: entries, selected: selected, focused: true, width: 64}
	for i, e := range entries {
		if e.ID == selected {
			g.cursor = i
		}
	}
	return g
}

// SetWidth sets the width the grid lays out in.
func (g *OptionGrid) SetWidth(width int) { g.width = width }

func (g *OptionGrid) Focus() { g.focused = true }
func (g *OptionGrid) Blur()  { g.focused = false }

// Cursor returns the id under the cursor.
func (g *OptionGrid) Cursor() string {
	if g.cursor < 0 || g.cursor >= len(g.entries) {
		return ""
	}
	return g.entries[g.cursor].ID
}

// columns returns four cards per row when every entry fits at that width,
// and two otherwise.
func (g *OptionGrid) columns() int {
	if len(g.entries) < 4 {
		return 2
	}
	widest := 0
	for _, e := range g.entries {
		for _, text := range []string{e.Label, e.Description, e.Icon} {
			widest = max(widest, lipgloss.Width(text))
		}
	}
	// border and padding on both sides
	if (widest+4+cardGap)*4 <= g.width+cardGap {
		return 4
	}
	return 2
}

// Update moves the cursor and emits OptionChosenMsg on enter, space, or a
// number key.
func (g *OptionGrid) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !g.focused || len(g.entries) == 0 {
		return nil
	}

	cols := g.columns()
	switch s := key.String(); s {
	case "left", "h":
		if g.cursor > 0 {
			g.cursor--
		}
	case "right", "l":
		if g.cursor < len(g.entries)-1 {
			g.cursor++
		}
	case "up", "k":
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case "down", "j":
		if g.cursor+cols < len(g.entries) {
			g.cursor += cols
		}
	case "tab":
		if g.cursor == len(g.entries)-1 {
			return exitFocus(true)
		}
		g.cursor++
	case "shift+tab":
		if g.cursor == 0 {
			return exitFocus(false)
		}
		g.cursor--
	case "home":
		g.cursor = 0
	case "end":
		g.cursor = len(g.entries) - 1
	case "enter", "space", " ":
		return g.choose(g.cursor)
	default:
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(g.entries) {
			g.cursor = n - 1
			return g.choose(g.cursor)
		}
	}
	return nil
}

// wrap moves the cursor to the opposite end when there is nowhere else for
// focus to go.
func (g *OptionGrid) wrap(forward bool) {
	if forward {
		g.cursor = 0
	} else {
		g.cursor = len(g.entries) - 1
	}
}

func exitFocus(forward bool) tea.Cmd {
	return func() tea.Msg { return FocusExitMsg{Forward: forward} }
}

func (g *OptionGrid) choose(i int) tea.Cmd {
	id := g.entries[i].ID
	return func() tea.Msg { return OptionChosenMsg{ID: id} }
}

// View renders the cards row by row.
func (g *OptionGrid) View() string {
	s := theme.Current().S()
	cols := g.columns()
	cardWidth := (g.width - cardGap*(cols-1)) / cols
	if cardWidth < 14 {
		cardWidth = 14
	}

	var rows []string
	for start := 0; start < len(g.entries); start += cols {
		end := start + cols
		if end > len(g.entries) {
			end = len(g.entries)
		}

		cards := make([]string, 0, cols*2)
		for i := start; i < end; i++ {
			style := s.Card
			switch {
			case g.focused && i == g.cursor:
				style = s.CardFocused
			case g.entries[i].ID == g.selected:
				style = s.CardSelected
			}
			if i > start {
				cards = append(cards, lipgloss.NewStyle().Width(cardGap).Render(""))
			}
			cards = append(cards, style.Width(cardWidth).Render(cardBody(g.entries[i])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cardBody renders icon and label for project types, label and description
// for budget ranges.
func cardBody(e catalog.Entry) string {
	t := theme.Current()
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.FgBase)).Render(e.Label)
	if e.Icon != "" {
		return lipgloss.JoinVertical(lipgloss.Left, e.Icon, label)
	}
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)).Render(e.Description)
	return lipgloss.JoinVertical(lipgloss.Left, label, desc)
}
