package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle provides helpers for rendering text with consistent background colors.
// lipgloss emits a reset between styled segments, which leaves gaps in the
// background unless every space is styled too.
// See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	space string // cached styled space
}

// NewBgStyle creates a new background style helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render renders text with a style, ensuring ALL characters including spaces
// have the background color applied.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	if !strings.Contains(text, " ") {
		return style.Background(b.bg).Render(text)
	}

	wordStyle := style.Background(b.bg)
	words := strings.Split(text, " ")
	result := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			result = append(result, wordStyle.Render(w))
		} else {
			result = append(result, "")
		}
	}
	return strings.Join(result, b.space)
}

// Space returns a single styled space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// FillLine pads rendered content to fill the specified width with the background color.
func (b BgStyle) FillLine(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(content)
}

// block renders n cells filled with color.
func block(n int, color string) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render(strings.Repeat(" ", n))
}
