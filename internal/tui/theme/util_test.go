package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	require.Equal(t, []uint8{0xcb, 0xa6, 0xf7}, []uint8{r, g, b})

	r, g, b = ParseHexColor("nope")
	require.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
}

func TestInterpolateColor(t *testing.T) {
	require.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	require.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	require.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestApplyGradient(t *testing.T) {
	require.Equal(t, "", ApplyGradient("", "#000000", "#ffffff"))
	require.Contains(t, ApplyGradient("a b", "#000000", "#ffffff"), " ")
}

func TestCurrent(t *testing.T) {
	orig := Current()
	defer SetCurrent(orig)

	custom := NewCatppuccinMocha()
	custom.Name = "custom"
	SetCurrent(custom)

	require.Equal(t, "custom", Current().Name)
	require.NotNil(t, Current().S())
}
