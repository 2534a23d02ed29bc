package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines colors for the UI chrome. Swatches always render in their
// own color regardless of theme.
type Theme struct {
	Name string

	Background string // outside the panels
	Surface    string // header, footer, dialog
	SurfaceAlt string // preference list

	SelectionBg   string
	SelectionText string

	Border      string // list box, swatch outline
	BorderFocus string // focus ring

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// palette is the handful of colors a theme is derived from.
type palette struct {
	name    string
	bg, fg  string
	accent  string
	success string
	warning string
	danger  string
}

// theme derives the chrome from the palette: surfaces step from the
// background toward the foreground, text tiers step back the other way.
func (p palette) theme() Theme {
	return Theme{
		Name: p.name,

		Background: p.bg,
		Surface:    mix(p.bg, p.fg, 0.04),
		SurfaceAlt: mix(p.bg, p.fg, 0.08),

		SelectionBg:   mix(p.bg, p.accent, 0.35),
		SelectionText: p.fg,

		Border:      mix(p.bg, p.fg, 0.25),
		BorderFocus: p.accent,

		Text:    p.fg,
		Muted:   mix(p.bg, p.fg, 0.65),
		Faint:   mix(p.bg, p.fg, 0.45),
		Accent:  p.accent,
		Success: p.success,
		Warning: p.warning,
		Danger:  p.danger,
	}
}

// mix blends a toward b in Lab space. Unparsable input returns a.
func mix(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

var palettes = []palette{
	// https://github.com/EdenEast/nightfox.nvim
	{name: "Nightfox", bg: "#192330", fg: "#cdcecf", accent: "#719cd6", success: "#81b29a", warning: "#dbc074", danger: "#c94f6d"},
	// https://github.com/rebelot/kanagawa.nvim
	{name: "Kanagawa", bg: "#1f1f28", fg: "#dcd7ba", accent: "#7e9cd8", success: "#98bb6c", warning: "#e6c384", danger: "#e46876"},
	// Tailwind slate/sky
	{name: "Slate", bg: "#0f172a", fg: "#f1f5f9", accent: "#38bdf8", success: "#22c55e", warning: "#f59e0b", danger: "#ef4444"},
}

var (
	themes     = buildThemes()
	themeOrder = themeNames()
)

func buildThemes() map[string]Theme {
	out := make(map[string]Theme, len(palettes))
	for _, p := range palettes {
		out[p.name] = p.theme()
	}
	return out
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for _, p := range palettes {
		names = append(names, p.name)
	}
	return names
}

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

// Styles contains pre-built Lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	bar := lipgloss.NewStyle().
		Background(lipgloss.Color(t.Surface)).
		Padding(0, 1)

	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Header: bar.Foreground(lipgloss.Color(t.Text)),
		Footer: bar.Foreground(lipgloss.Color(t.Muted)),
	}
}

// WithBackground returns a copy of Styles with every text style on the given
// background, so styled text never shows the terminal default through.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	s.Text = s.Text.Background(bg)
	s.MutedText = s.MutedText.Background(bg)
	s.FaintText = s.FaintText.Background(bg)
	s.AccentText = s.AccentText.Background(bg)
	s.SuccessText = s.SuccessText.Background(bg)
	s.WarningText = s.WarningText.Background(bg)
	s.DangerText = s.DangerText.Background(bg)
	return s
}
