package wizard

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/require"
)

func backSubmit() *ButtonBar {
	return NewButtonBar(
		Button{ID: ButtonBack, Label: "← Volver"},
		Button{ID: ButtonSubmit, Label: "Enviar mensaje"},
	)
}

func TestButtonBar_FocusCycle(t *testing.T) {
	t.Parallel()

	bar := backSubmit()
	require.False(t, bar.Focused())
	require.Equal(t, ButtonNone, bar.FocusedButton())

	bar.FocusFirst()
	require.Equal(t, ButtonBack, bar.FocusedButton())

	require.True(t, bar.FocusNext())
	require.Equal(t, ButtonSubmit, bar.FocusedButton())

	require.False(t, bar.FocusNext(), "moving past the last button blurs")
	require.False(t, bar.Focused())

	bar.FocusLast()
	require.Equal(t, ButtonSubmit, bar.FocusedButton())
	require.True(t, bar.FocusPrev())
	require.False(t, bar.FocusPrev())
	require.Equal(t, ButtonNone, bar.FocusedButton())
}

func TestButtonBar_SkipsDisabled(t *testing.T) {
	t.Parallel()

	bar := backSubmit()
	bar.SetEnabled(ButtonSubmit, false)

	bar.FocusLast()
	require.Equal(t, ButtonBack, bar.FocusedButton())
	require.False(t, bar.FocusNext())

	bar.SetEnabled(ButtonSubmit, true)
	bar.FocusFirst()
	require.True(t, bar.FocusNext())
	require.Equal(t, ButtonSubmit, bar.FocusedButton())
}

func TestButtonBar_Render(t *testing.T) {
	t.Parallel()

	require.Empty(t, NewButtonBar().Render())

	bar := backSubmit()
	bar.SetWidth(40)
	out := bar.Render()
	require.Contains(t, out, "Volver")
	require.Contains(t, out, "Enviar mensaje")
	require.Equal(t, 40, lipgloss.Width(out))
}

func TestHintBar(t *testing.T) {
	t.Parallel()

	require.Empty(t, HintBar())
	require.Empty(t, HintBar("enter"))

	out := HintBar("enter", "seleccionar", "esc", "volver")
	require.True(t, strings.Contains(out, "seleccionar"))
	require.True(t, strings.Contains(out, "•"))
}
