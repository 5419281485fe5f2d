package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToast_Show(t *testing.T) {
	t.Parallel()

	toast := NewToast(time.Second)

	cmd := toast.Show("¡Mensaje enviado!", ToastSuccess)

	require.NotNil(t, cmd, "Show returns the dismissal command")
	require.True(t, toast.IsVisible())
	require.Equal(t, "¡Mensaje enviado!", toast.Message())
}

func TestToast_DefaultDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultToastDuration, NewToast(0).duration)
}

func TestToast_Dismiss(t *testing.T) {
	t.Parallel()

	toast := NewToast(time.Second)
	toast.Show("hola", ToastSuccess)

	toast.Update(ToastDismissMsg{Seq: toast.seq})

	require.False(t, toast.IsVisible())
	require.Empty(t, toast.Message())
}

func TestToast_StaleDismissIgnored(t *testing.T) {
	t.Parallel()

	toast := NewToast(time.Second)
	toast.Show("first", ToastSuccess)
	stale := ToastDismissMsg{Seq: toast.seq}
	toast.Show("second", ToastWarning)

	toast.Update(stale)

	require.True(t, toast.IsVisible())
	require.Equal(t, "second", toast.Message())
}

func TestToast_View(t *testing.T) {
	t.Parallel()

	toast := NewToast(time.Second)
	require.Empty(t, toast.View(80, 24))

	toast.Show("hola", ToastSuccess)
	view := toast.View(80, 24)

	require.Contains(t, view, "hola")
	require.Equal(t, 23, strings.Count(view, "\n"), "toast sits on the last row")
}
