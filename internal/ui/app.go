package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/swatch/internal/debounce"
	"github.com/five82/swatch/internal/prefs"
	"github.com/five82/swatch/internal/state"
)

const flashDuration = 3 * time.Second

// Options configures the UI.
type Options struct {
	Store         *state.Store
	PrefsPath     string
	PollTick      time.Duration
	CommitDelay   time.Duration
	Debounce      debounce.Policy
	InputInDialog bool
	// Commit persists one preference. It is called from debounce timer
	// goroutines and must be safe for concurrent use.
	Commit func(name, value string)
	// SaveTheme persists the UI theme.
	SaveTheme func(name string)
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	prefsPath string
	pollTick  time.Duration
	saveTheme func(string)

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal

	// Data state
	snapshot state.Snapshot

	// List state
	rows     []*row
	selected int
	editing  bool

	flash     string
	flashedAt time.Time
}

// New creates a new Bubble Tea model with one row per known preference.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 250 * time.Millisecond
	}

	delay := opts.CommitDelay
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	var snap state.Snapshot
	if opts.Store != nil {
		snap = opts.Store.Snapshot()
	}
	themeName := snap.Theme
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	rowOpts := rowOptions{
		inputInDialog: opts.InputInDialog,
		delay:         delay,
		policy:        opts.Debounce,
		commit:        opts.Commit,
	}
	defs := prefs.Definitions()
	rows := make([]*row, 0, len(defs))
	for _, def := range defs {
		value, ok := snap.Color(def.Name)
		if !ok || strings.TrimSpace(value) == "" {
			value = def.Default
		}
		rows = append(rows, newRow(def, value, rowOpts))
	}

	return Model{
		store:     opts.Store,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		saveTheme: opts.SaveTheme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
		snapshot:  snap,
		rows:      rows,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pollTick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}
	if m.editing {
		r := m.rows[m.selected]
		var cmd tea.Cmd
		r.hex, cmd = r.hex.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, max(m.height-1, 1)) + "\n" + m.renderFooter(dialogKeys{m.keys})
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.editing {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Flush()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		return m, m.saveThemeCmd(m.theme.Name)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(m.rows) - 1

	case key.Matches(msg, m.keys.Open):
		r := m.rows[m.selected]
		m.modal = newPickerDialog(r.def.Label+" · "+r.def.Name, r.widget)
		return m, nil

	case key.Matches(msg, m.keys.EditHex):
		if m.rows[m.selected].widget.Options().InputInDialog {
			return m, nil
		}
		m.editing = true
		m.rows[m.selected].startEdit()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.Reset):
		r := m.rows[m.selected]
		r.reset()
		m.setFlash(fmt.Sprintf("%s reset to %s", r.def.Label, r.def.Default))
	}

	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.rows[m.selected]
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Tab):
		m.editing = false
		if !r.submitEdit() {
			m.setFlash("Not a color; reverted")
		}
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.editing = false
		r.cancelEdit()
		return m, nil
	}
	var cmd tea.Cmd
	r.hex, cmd = r.hex.Update(msg)
	return m, cmd
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	hex := m.rows[m.selected].widget.Hex()
	if hex == "" {
		return m, nil
	}
	if err := clipboard.WriteAll(hex); err != nil {
		slog.Warn("copy to clipboard failed", "error", err)
		m.setFlash("Clipboard unavailable")
		return m, nil
	}
	m.setFlash("Copied " + hex)
	return m, nil
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashedAt = time.Now()
}

func (m Model) saveThemeCmd(name string) tea.Cmd {
	if m.saveTheme == nil {
		return nil
	}
	save := m.saveTheme
	return func() tea.Msg {
		save(name)
		return nil
	}
}

// applySnapshot reconciles rows with values observed in the store.
func (m *Model) applySnapshot(snap state.Snapshot) {
	prev := m.snapshot
	m.snapshot = snap

	if snap.Theme != "" && snap.Theme != prev.Theme && snap.Theme != m.theme.Name {
		m.theme = GetTheme(snap.Theme)
	}
	if snap.Revision == prev.Revision {
		return
	}
	for _, r := range m.rows {
		if v, ok := snap.Color(r.def.Name); ok {
			r.apply(v)
		}
	}
}

// Flush writes every pending edit immediately.
func (m Model) Flush() {
	for _, r := range m.rows {
		r.flush()
	}
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.flash != "" && time.Since(m.flashedAt) > flashDuration {
		m.flash = ""
	}
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

// renderMain renders the header, the preference list and the footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	listHeight := max(m.height-3, 3) // header + status + footer
	b.WriteString(m.renderList(m.width, listHeight))
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter(m.keys))

	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render("swatch", styles.AccentText.Bold(true)) + bg.Spaces(2) +
		bg.Render(m.theme.Name, styles.MutedText)
	pathWidth := max(m.width-lipgloss.Width(left)-4, 10)
	right := bg.Render(truncateMiddle(m.prefsPath, pathWidth), styles.FaintText)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

func (m Model) renderList(width, height int) string {
	inner := height - 2
	start := 0
	if m.selected >= inner {
		start = m.selected - inner + 1
	}
	end := min(start+inner, len(m.rows))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], width-2, i == m.selected))
	}
	return m.renderTitledBox("Colors", strings.Join(lines, "\n"), width, height)
}

func (m Model) renderStatus() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var content string
	switch {
	case m.snapshot.LastError != nil:
		style := styles.WarningText
		if m.snapshot.IsFailing() {
			style = styles.DangerText
		}
		content = bg.Render(truncate("Error: "+m.snapshot.LastError.Error(), m.width-2), style)
	case m.flash != "":
		content = bg.Render(m.flash, styles.SuccessText)
	case m.editing:
		content = bg.Render("Enter a color (hex, rgb(), hsl() or a name)", styles.MutedText)
	default:
		r := m.rows[m.selected]
		content = bg.Render(truncate(r.widget.Value(), m.width-2), styles.FaintText)
	}
	return styles.Footer.Width(m.width).Render(content)
}

func (m Model) renderFooter(keys help.KeyMap) string {
	styles := m.theme.Styles()
	h := m.help
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	return styles.Footer.Width(m.width).Render(h.View(keys))
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, len(title)+2)
	leftPad := (innerWidth - len(title) - 2) / 2
	rightPad := innerWidth - len(title) - 2 - leftPad

	topBorder := bg.Render("┌"+strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad)+"┐", borderStyle)
	bottomBorder := bg.Render("└"+strings.Repeat("─", innerWidth)+"┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(m.theme.SurfaceAlt))
	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	padded := make([]string, 0, boxHeight)
	for i := range boxHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		padded = append(padded, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(padded, "\n") + "\n" + bottomBorder
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled. Pending edits are flushed before it returns.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	m.Flush()
	for _, r := range m.rows {
		r.close()
	}
	return err
}
