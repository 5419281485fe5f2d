package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles for the TUI.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Eyebrow  lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style

	// Option cards: idle, under the cursor, previously chosen.
	Card         lipgloss.Style
	CardFocused  lipgloss.Style
	CardSelected lipgloss.Style

	Modal lipgloss.Style
	Pill  lipgloss.Style
}
