package contact

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/gcloudgt/contacto/internal/tui/theme"
)

const (
	heroEyebrow  = "Hagámoslo realidad"
	heroTitle    = "Tu próximo paso "
	heroGradient = "empieza aquí"
	heroSubtitle = "No es solo un formulario. Es el inicio de algo grande para tu negocio."
	responsePill = "Respuesta en menos de 24h"
	trustNote    = "Sin compromisos. Sin spam. Solo conversación honesta sobre tu proyecto."

	litBarWidth  = 12
	dimBarWidth  = 8
	progressGap  = " "
	litBarGlyph  = "━"
	dimBarGlyph  = "─"
	pillSpacing  = "  "
	iconMail     = "✉"
	iconPhone    = "☎"
	iconResponse = "◷"
)

// renderHero renders the section header above the form.
func renderHero() string {
	t := theme.Current()
	s := t.S()
	title := s.Title.Render(heroTitle) + theme.ApplyGradient(heroGradient, t.Primary, t.Secondary)
	return lipgloss.JoinVertical(lipgloss.Center,
		s.Eyebrow.Render(strings.ToUpper(heroEyebrow)),
		"",
		title,
		s.Subtitle.Render(heroSubtitle),
	)
}

// renderPills renders the quick contact affordances.
func renderPills(email, phone string) string {
	t := theme.Current()
	pill := t.S().Pill
	icon := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))

	pills := make([]string, 0, 3)
	if email != "" {
		pills = append(pills, pill.Render(icon.Render(iconMail)+" "+email))
	}
	if phone != "" {
		pills = append(pills, pill.Render(icon.Render(iconPhone)+" "+phone))
	}
	pills = append(pills, pill.Render(accent.Render(iconResponse)+" "+muted.Render(responsePill)))

	row := make([]string, 0, len(pills)*2)
	for i, p := range pills {
		if i > 0 {
			row = append(row, pillSpacing)
		}
		row = append(row, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, row...)
}

// renderProgress draws one bar per step; bars up to the current step are lit.
func renderProgress(progress [inquiry.StepCount]bool) string {
	t := theme.Current()
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(t.BorderMuted))

	bars := make([]string, 0, len(progress))
	for _, lit := range progress {
		if lit {
			bars = append(bars, theme.ApplyGradient(strings.Repeat(litBarGlyph, litBarWidth), t.Primary, t.Secondary))
		} else {
			bars = append(bars, dim.Render(strings.Repeat(dimBarGlyph, dimBarWidth)))
		}
	}
	return strings.Join(bars, progressGap)
}

func renderTrustNote() string {
	return theme.Current().S().Muted.Render(trustNote)
}
