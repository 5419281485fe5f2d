package tui

import (
	"strings"

	"charm.land/glamour/v2"
)

// RenderMarkdown renders markdown for the terminal with glamour, wrapping at
// width (capped at 120). It falls back to the raw text if rendering fails.
func RenderMarkdown(content string, width int) string {
	if width <= 0 || width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}
