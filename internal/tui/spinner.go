package tui

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/gcloudgt/contacto/internal/tui/theme"
)

// Spinner wraps the bubbles spinner with a label and the theme colors.
type Spinner struct {
	model spinner.Model
	label string
}

// NewSpinner creates a spinner with the given frames and label.
func NewSpinner(style spinner.Spinner, label string) *Spinner {
	t := theme.Current()
	s := spinner.New(
		spinner.WithSpinner(style),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))),
	)
	return &Spinner{model: s, label: label}
}

// NewDefaultSpinner creates a MiniDot spinner.
func NewDefaultSpinner(label string) *Spinner {
	return NewSpinner(spinner.MiniDot, label)
}

// Update advances the animation on its own tick messages.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// Tick returns the command that starts the animation.
func (s *Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

func (s *Spinner) View() string {
	if s.label == "" {
		return s.model.View()
	}
	t := theme.Current()
	return s.model.View() + " " + lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)).Render(s.label)
}
