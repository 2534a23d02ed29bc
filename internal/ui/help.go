package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	sections := []helpSection{
		{
			title: "Preferences",
			items: []helpItem{
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
				{"enter", "Open picker"},
				{"e", "Type a color"},
				{"y", "Copy hex"},
				{"r", "Reset to default"},
			},
		},
		{
			title: "Picker",
			items: []helpItem{
				{"tab", "Next control"},
				{"←/→", "Adjust"},
				{"shift+←/→", "Adjust by 10"},
				{"↑/↓", "Lightness on the plane"},
				{"enter", "Keep changes"},
				{"esc", "Revert changes"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))

	lines := []string{
		bg.Render("Keyboard Shortcuts", styles.Text.Bold(true)),
		bg.Render(strings.Repeat("─", 30), styles.FaintText),
		"",
	}
	for i, section := range sections {
		lines = append(lines, bg.Render(section.title, styles.AccentText.Bold(true)))
		for _, item := range section.items {
			lines = append(lines, bg.Render(padRight(item.key, 12), keyStyle)+bg.Render(item.desc, styles.Text))
		}
		if i < len(sections)-1 {
			lines = append(lines, "")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		BorderBackground(lipgloss.Color(m.theme.Surface)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(strings.Join(lines, "\n")),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
