package testfixtures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"enter", "tab", "shift+tab", "esc", "space", "backspace",
		"left", "right", "up", "down", "home", "end",
		"ctrl+c", "ctrl+s", "ctrl+e", "y", "4",
	} {
		require.Equal(t, name, Key(name).String(), "key %q", name)
	}
}

func TestType(t *testing.T) {
	t.Parallel()

	keys := Type("Año")
	require.Len(t, keys, 3)
	require.Equal(t, "ñ", keys[1].String())
}
