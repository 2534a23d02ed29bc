package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// List
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Open    key.Binding
	EditHex key.Binding
	Copy    key.Binding
	Reset   key.Binding

	// Dialog and inputs
	Tab      key.Binding
	ShiftTab key.Binding
	Left     key.Binding
	Right    key.Binding
	BigLeft  key.Binding
	BigRight key.Binding
	Confirm  key.Binding
	Escape   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// List
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Open picker"),
		),
		EditHex: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit hex"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy hex"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset to default"),
		),

		// Dialog and inputs
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next control"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous control"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Increase"),
		),
		BigLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "Decrease by 10"),
		),
		BigRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "Increase by 10"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "OK"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.EditHex, k.Copy, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Open, k.EditHex, k.Copy, k.Reset},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// dialogKeys is the footer binding set while the picker is open.
type dialogKeys struct{ keyMap }

func (k dialogKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Left, k.Right, k.Confirm, k.Escape}
}

func (k dialogKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.ShiftTab}, {k.Left, k.Right, k.BigLeft, k.BigRight}, {k.Confirm, k.Escape}}
}
