package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/gcloudgt/contacto/internal/tui/theme"
)

// HintBar renders key-description pairs.
// Example: HintBar("↑↓", "navigate", "enter", "select") renders
// "↑↓ navigate • enter select". An odd number of arguments renders nothing.
func HintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	t := theme.Current()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.BorderDefault))

	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		parts = append(parts, keyStyle.Render(pairs[i])+" "+descStyle.Render(pairs[i+1]))
	}
	return strings.Join(parts, " "+sepStyle.Render("•")+" ")
}
