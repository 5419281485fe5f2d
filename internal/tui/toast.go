package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/gcloudgt/contacto/internal/tui/theme"
)

// DefaultToastDuration is how long a toast stays up unless configured.
const DefaultToastDuration = 3 * time.Second

// ToastDismissMsg is sent when a toast's lifetime ends. Seq ties it to the
// Show call that scheduled it, so a stale tick cannot hide a newer toast.
type ToastDismissMsg struct {
	Seq int
}

// ToastKind selects the toast color.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastWarning
)

// Toast is a transient notification drawn in the bottom-right corner.
type Toast struct {
	message  string
	kind     ToastKind
	visible  bool
	seq      int
	duration time.Duration
}

// NewToast creates a toast that dismisses itself after d. A non-positive d
// uses DefaultToastDuration.
func NewToast(d time.Duration) *Toast {
	if d <= 0 {
		d = DefaultToastDuration
	}
	return &Toast{duration: d}
}

// Show displays msg and returns the command that will dismiss it.
func (t *Toast) Show(msg string, kind ToastKind) tea.Cmd {
	t.seq++
	t.message = msg
	t.kind = kind
	t.visible = true

	seq := t.seq
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return ToastDismissMsg{Seq: seq}
	})
}

// Update hides the toast when its own dismissal tick arrives.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(ToastDismissMsg); ok && m.Seq == t.seq {
		t.visible = false
		t.message = ""
	}
	return nil
}

// View renders the toast right-aligned on the last row of a width×height
// area. It returns "" when hidden.
func (t *Toast) View(width, height int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	th := theme.Current()
	bg := th.Success
	if t.kind == ToastWarning {
		bg = th.Warning
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.BgBase)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Bold(true)

	content := style.Render(t.message)
	if lipgloss.Width(content) > width-2 && width > 4 {
		content = style.Width(width - 2).Render(t.message)
	}

	rows := height - 1
	if rows < 0 {
		rows = 0
	}
	return strings.Repeat("\n", rows) + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(content)
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Message returns the current message, or "" when hidden.
func (t *Toast) Message() string {
	if !t.visible {
		return ""
	}
	return t.message
}
