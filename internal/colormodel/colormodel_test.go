package colormodel

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHSLA(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  HSLA
	}{
		{"short hex", "#f00", HSLA{0, 100, 50, 1}},
		{"long hex upper", "#00FF00", HSLA{120, 100, 50, 1}},
		{"hex with alpha", "#0000ff80", HSLA{240, 100, 50, 128.0 / 255}},
		{"short hex with alpha", "#fff0", HSLA{0, 0, 100, 0}},
		{"named", "white", HSLA{0, 0, 100, 1}},
		{"named mixed case", "  Black ", HSLA{0, 0, 0, 1}},
		{"transparent", "transparent", HSLA{0, 0, 0, 0}},
		{"rgb", "rgb(255, 0, 0)", HSLA{0, 100, 50, 1}},
		{"rgba", "rgba(255, 255, 255, 0.5)", HSLA{0, 0, 100, 0.5}},
		{"rgb percentages", "rgb(0%, 0%, 100%)", HSLA{240, 100, 50, 1}},
		{"rgb space syntax", "rgb(0 255 0 / 25%)", HSLA{120, 100, 50, 0.25}},
		{"hsl", "hsl(200, 50%, 40%)", HSLA{200, 50, 40, 1}},
		{"hsla fractional", "hsla(12.5, 33.3%, 66.6%, 0.75)", HSLA{12.5, 33.3, 66.6, 0.75}},
		{"hsl deg unit", "hsl(90deg 10% 20%)", HSLA{90, 10, 20, 1}},
		{"hsl turn unit", "hsl(0.5turn, 10%, 20%)", HSLA{180, 10, 20, 1}},
		{"hue wraps", "hsl(370, 10%, 20%)", HSLA{10, 10, 20, 1}},
		{"negative hue wraps", "hsl(-90, 10%, 20%)", HSLA{270, 10, 20, 1}},
		{"clamped alpha", "hsla(0, 0%, 0%, 4)", HSLA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHSLA(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.H, got.H, 0.01, "hue")
			assert.InDelta(t, tt.want.S, got.S, 0.01, "saturation")
			assert.InDelta(t, tt.want.L, got.L, 0.01, "lightness")
			assert.InDelta(t, tt.want.A, got.A, 0.01, "alpha")
		})
	}
}

func TestToHSLA_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"not-a-color",
		"#12",
		"#12345",
		"#ggg",
		"rgb(1, 2)",
		"rgb(1, 2, 3",
		"rgb(1px, 2, 3)",
		"hsl(10, 20%, 30%) extra",
		"cmyk(1, 2, 3, 4)",
		"hsl(1em, 2%, 3%)",
		"red blue",
		"rgb(1,,2,3)",
		"rgb(,1,2,3)",
		"rgb(1, 2, 3,)",
		"rgb(255 0 0 0.5)",
		"rgb(1 2, 3)",
		"rgb(1, 2, 3 / 0.5)",
		"hsl(10 20% 30% /)",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ToHSLA(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse), "error %v should wrap ErrParse", err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, in, pe.Input)
		})
	}
}

func TestToHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#abc", "#AABBCC"},
		{"#a1b2c3", "#A1B2C3"},
		{"#a1b2c3d4", "#A1B2C3"},
		{"red", "#FF0000"},
		{"rgb(16, 32, 48)", "#102030"},
		{"hsl(0, 0%, 100%)", "#FFFFFF"},
		{"hsla(120, 100%, 25%, 0.3)", "#008000"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ToHex("nope")
	assert.ErrorIs(t, err, ErrParse)
}

func TestFromHSLA(t *testing.T) {
	assert.Equal(t, "hsla(200, 50%, 40%, 1)", FromHSLA(200, 50, 40, 1))
	assert.Equal(t, "hsla(12.35, 0.5%, 99.99%, 0.25)", FromHSLA(12.346, 0.5, 99.99, 0.25))
	assert.Equal(t, "hsla(0, 100%, 0%, 0)", FromHSLA(360, 120, -5, -1))
	assert.Equal(t, "hsla(350, 0%, 0%, 1)", FromHSLA(-10, 0, 0, 1))
	assert.Equal(t, "hsla(0, 0%, 0%, 1)", FromHSLA(359.999, 0, 0, 1))
	assert.Equal(t, "hsla(10, 20%, 30%, 0.4)", HSLA{10, 20, 30, 0.4}.String())
}

func TestRoundTrip(t *testing.T) {
	for h := 0.0; h < 360; h += 17.3 {
		for s := 0.0; s <= 100; s += 12.5 {
			for l := 0.0; l <= 100; l += 12.5 {
				for _, a := range []float64{0, 0.33, 1} {
					got, err := ToHSLA(FromHSLA(h, s, l, a))
					require.NoError(t, err)
					assert.InDelta(t, h, got.H, 0.01)
					assert.InDelta(t, s, got.S, 0.01)
					assert.InDelta(t, l, got.L, 0.01)
					assert.InDelta(t, a, got.A, 0.01)
				}
			}
		}
	}
}

func TestContrastRatio(t *testing.T) {
	white, err := ContrastRatio("#FFFFFF")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, white, 1e-9)

	black, err := ContrastRatio("black")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, black, 1e-9)

	red, err := ContrastRatio("rgb(255, 0, 0)")
	require.NoError(t, err)
	assert.InDelta(t, 1.05/(0.2126+0.05), red, 1e-6)

	// alpha is ignored
	translucent, err := ContrastRatio("rgba(255, 0, 0, 0.1)")
	require.NoError(t, err)
	assert.InDelta(t, red, translucent, 1e-9)

	for _, c := range []string{"#123456", "hsl(50, 100%, 50%)", "gray", "transparent"} {
		r, err := ContrastRatio(c)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r, 1.0, c)
		assert.False(t, math.IsNaN(r), c)
	}

	_, err = ContrastRatio("bogus")
	assert.ErrorIs(t, err, ErrParse)
}

func TestLuminance(t *testing.T) {
	l, err := Luminance("#808080")
	require.NoError(t, err)
	assert.InDelta(t, 0.2159, l, 0.001)
}
