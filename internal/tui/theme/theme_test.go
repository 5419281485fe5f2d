package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatppuccinMocha_ColorPalette(t *testing.T) {
	th := NewCatppuccinMocha()
	require.Equal(t, "catppuccin-mocha", th.Name)
	require.True(t, th.IsDark)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Primary (Mauve)", th.Primary, "#cba6f7"},
		{"Secondary (Sky)", th.Secondary, "#89dceb"},
		{"BgBase", th.BgBase, "#1e1e2e"},
		{"FgBase", th.FgBase, "#cdd6f4"},
		{"BorderFocused (Lavender)", th.BorderFocused, "#b4befe"},
		{"Success", th.Success, "#a6e3a1"},
		{"Warning", th.Warning, "#f9e2af"},
		{"Error", th.Error, "#f38ba8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestTheme_StylesBuiltOnce(t *testing.T) {
	th := NewCatppuccinMocha()
	s1 := th.S()
	s2 := th.S()
	require.NotNil(t, s1)
	require.Same(t, s1, s2)
	require.Contains(t, s1.Title.Render("Hola"), "Hola")
}

func TestSetCurrent(t *testing.T) {
	orig := Current()
	t.Cleanup(func() { SetCurrent(orig) })

	custom := NewCatppuccinMocha()
	custom.Name = "custom"
	SetCurrent(custom)
	require.Same(t, custom, Current())
}
