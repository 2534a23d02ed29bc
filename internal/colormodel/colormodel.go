// Package colormodel converts between the three representations a color
// preference can take: a CSS color string, HSLA components and a display
// hex string. It also provides the contrast metric used to decide whether a
// swatch needs an outline.
package colormodel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrParse is wrapped by every ParseError.
var ErrParse = errors.New("unrecognized color")

// ParseError reports a string that could not be normalized to a color.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("parse color %q", e.Input)
	}
	return fmt.Sprintf("parse color %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

func newParseError(input, reason string, args ...any) *ParseError {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	return &ParseError{Input: input, Reason: reason}
}

// HSLA holds hue in degrees [0,360), saturation and lightness as
// percentages [0,100] and alpha as a fraction [0,1].
type HSLA struct {
	H, S, L, A float64
}

// String formats the components as a canonical hsla() string.
func (c HSLA) String() string {
	return FromHSLA(c.H, c.S, c.L, c.A)
}

// ToHSLA parses any supported CSS color syntax into normalized components.
func ToHSLA(s string) (HSLA, error) {
	p, err := parse(s)
	if err != nil {
		return HSLA{}, err
	}
	if p.hsl != nil {
		return *p.hsl, nil
	}
	h, sat, l := p.rgb.Clamped().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLA{
		H: wrapHue(h),
		S: clamp(sat*100, 0, 100),
		L: clamp(l*100, 0, 100),
		A: p.alpha,
	}, nil
}

// ToHex normalizes a color to upper-case #RRGGBB. Alpha is dropped.
func ToHex(s string) (string, error) {
	p, err := parse(s)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(p.rgb.Clamped().Hex()), nil
}

// FromHSLA formats components as hsla(H, S%, L%, A). Hue wraps; the other
// components are clamped to their legal ranges.
func FromHSLA(h, s, l, a float64) string {
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
		formatNumber(wrapHue(round2(h))),
		formatNumber(clamp(round2(s), 0, 100)),
		formatNumber(clamp(round2(l), 0, 100)),
		formatNumber(clamp(round2(a), 0, 1)))
}

// Luminance returns the WCAG relative luminance of a color, ignoring alpha.
func Luminance(s string) (float64, error) {
	p, err := parse(s)
	if err != nil {
		return 0, err
	}
	return luminance(p.rgb), nil
}

// ReferenceLuminance is the luminance ContrastRatio compares against: a
// white background.
const ReferenceLuminance = 1.0

// ContrastRatio returns the contrast between the color and a white
// background. The result is always >= 1.
func ContrastRatio(s string) (float64, error) {
	l, err := Luminance(s)
	if err != nil {
		return 0, err
	}
	return contrastRatio(ReferenceLuminance, l), nil
}

func contrastRatio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatNumber(v float64) string {
	if v == 0 {
		// avoids "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
