package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/five82/swatch/internal/colormodel"
	"github.com/five82/swatch/internal/picker"
)

// slider is a one-dimensional knob bound to a single HSLA component.
type slider struct {
	component picker.Component
	label     string
	max       float64
	step      float64
	unit      string
}

var (
	hueSlider   = slider{component: picker.Hue, label: "Hue", max: 360, step: 1, unit: "°"}
	satSlider   = slider{component: picker.Saturation, label: "Saturation", max: 100, step: 1, unit: "%"}
	litSlider   = slider{component: picker.Lightness, label: "Lightness", max: 100, step: 1, unit: "%"}
	alphaSlider = slider{component: picker.Transparency, label: "Alpha", max: 1, step: 0.01}
)

func (s slider) value(c colormodel.HSLA) float64 {
	switch s.component {
	case picker.Hue:
		return c.H
	case picker.Saturation:
		return c.S
	case picker.Lightness:
		return c.L
	default:
		return c.A
	}
}

// adjust moves the knob by steps and reports the new value to the state.
// Hue wraps around; the other components stop at their bounds.
func (s slider) adjust(st *picker.State, steps float64) {
	v := s.value(st.Components()) + steps*s.step
	if s.component != picker.Hue {
		v = math.Max(0, math.Min(s.max, v))
	}
	st.SetComponent(s.component, v)
}

func (s slider) format(c colormodel.HSLA) string {
	v := s.value(c)
	if s.component == picker.Transparency {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.0f%s", v, s.unit)
}

// sample returns the color the slider would produce at position v, blended
// over bg when it is translucent.
func (s slider) sample(c colormodel.HSLA, v float64, bg colorful.Color) string {
	switch s.component {
	case picker.Hue:
		c.H = v
	case picker.Saturation:
		c.S = v
	case picker.Lightness:
		c.L = v
	default:
		c.A = v
	}
	return sampleHSLA(c, bg)
}

func sampleHSLA(c colormodel.HSLA, bg colorful.Color) string {
	col := colorful.Hsl(math.Mod(c.H, 360), c.S/100, c.L/100).Clamped()
	if c.A < 1 {
		col = bg.BlendRgb(col, c.A).Clamped()
	}
	return col.Hex()
}

// render draws a gradient track with a marker at the current value.
func (s slider) render(c colormodel.HSLA, width int, focused bool, theme Theme) string {
	if width < 2 {
		width = 2
	}
	bg, _ := colorful.Hex(theme.Surface)
	pos := int(math.Round(s.value(c) / s.max * float64(width-1)))

	var b strings.Builder
	for i := range width {
		v := float64(i) / float64(width-1) * s.max
		cell := s.sample(c, v, bg)
		style := lipgloss.NewStyle().Background(lipgloss.Color(cell))
		if i == pos {
			style = style.Foreground(lipgloss.Color(markerColor(cell))).Bold(true)
			b.WriteString(style.Render(ternary(focused, "◆", "│")))
			continue
		}
		b.WriteString(style.Render(" "))
	}
	return b.String()
}

// plane is the two-dimensional saturation/lightness area.
type plane struct {
	width, height int
}

func (p plane) adjust(st *picker.State, dSat, dLight float64) {
	c := st.Components()
	st.SetSaturationLightness(
		math.Max(0, math.Min(100, c.S+dSat)),
		math.Max(0, math.Min(100, c.L+dLight)),
	)
}

// render draws saturation left to right and lightness bottom to top.
func (p plane) render(c colormodel.HSLA, focused bool) string {
	col := int(math.Round(c.S / 100 * float64(p.width-1)))
	line := int(math.Round((100 - c.L) / 100 * float64(p.height-1)))

	lines := make([]string, 0, p.height)
	for y := range p.height {
		var b strings.Builder
		for x := range p.width {
			cell := colorful.Hsl(c.H, float64(x)/float64(p.width-1), 1-float64(y)/float64(p.height-1)).Clamped().Hex()
			style := lipgloss.NewStyle().Background(lipgloss.Color(cell))
			if x == col && y == line {
				style = style.Foreground(lipgloss.Color(markerColor(cell))).Bold(true)
				b.WriteString(style.Render(ternary(focused, "◆", "+")))
				continue
			}
			b.WriteString(style.Render(" "))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// markerColor picks black or white, whichever reads better on bg.
func markerColor(bg string) string {
	if ratio, err := colormodel.ContrastRatio(bg); err == nil && ratio < 4.5 {
		return "#000000"
	}
	return "#ffffff"
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
