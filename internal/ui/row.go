package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/swatch/internal/colormodel"
	"github.com/five82/swatch/internal/debounce"
	"github.com/five82/swatch/internal/picker"
	"github.com/five82/swatch/internal/prefs"
)

const (
	labelWidth  = 16
	swatchWidth = 6
)

// row binds one preference to a picker widget. Widget changes are written
// back through a debounced committer; values seen in the store flow the
// other way on each tick, except while a commit for the row is pending.
type row struct {
	def       prefs.Definition
	widget    *picker.Widget
	hex       textinput.Model
	editing   bool
	committer *debounce.Committer
	delay     time.Duration
	commit    debounce.CommitFunc

	// applying suppresses the commit echo while a store value is applied.
	applying bool
}

type rowOptions struct {
	inputInDialog bool
	delay         time.Duration
	policy        debounce.Policy
	commit        func(name, value string)
}

func newRow(def prefs.Definition, value string, opts rowOptions) *row {
	r := &row{
		def: def,
		widget: picker.NewWidget(value, picker.Options{
			DisableTransparency: !def.AllowTransparency,
			InputInDialog:       opts.inputInDialog,
		}),
		hex:       newHexInput(),
		committer: debounce.New(debounce.WithPolicy(opts.policy)),
		delay:     opts.delay,
	}
	if opts.commit != nil {
		name := def.Name
		r.commit = func(v string) { opts.commit(name, v) }
	}
	r.hex.SetValue(r.widget.Hex())
	r.widget.OnChange(r.onChange)
	return r
}

func newHexInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 32
	in.Width = 9
	return in
}

func (r *row) onChange(value string) {
	if !r.editing {
		r.hex.SetValue(r.widget.Hex())
	}
	if r.applying || r.commit == nil {
		return
	}
	r.committer.Schedule(value, r.delay, r.commit)
}

// apply takes a value observed in the store. It is ignored while the row
// still has an unwritten edit, so a stale file value cannot pull the knobs
// back mid-drag.
func (r *row) apply(value string) {
	if _, pending := r.committer.Pending(); pending {
		return
	}
	r.applying = true
	r.widget.SetValue(value)
	r.applying = false
}

func (r *row) startEdit() {
	r.editing = true
	r.hex.Placeholder = r.widget.Hex()
	r.hex.SetValue("")
	r.hex.Focus()
}

// submitEdit applies the typed text. Invalid text reverts the field.
func (r *row) submitEdit() bool {
	r.editing = false
	r.hex.Blur()
	display, ok := r.widget.SubmitHex(r.hex.Value())
	r.hex.SetValue(display)
	return ok
}

func (r *row) cancelEdit() {
	r.editing = false
	r.hex.Blur()
	r.hex.SetValue(r.widget.Hex())
}

func (r *row) reset() {
	r.widget.SetValue(r.def.Default)
}

// flush writes any pending edit immediately.
func (r *row) flush() {
	r.committer.Flush()
}

// close drops anything still pending and releases the timer.
func (r *row) close() {
	r.committer.Stop()
}

// renderSwatch draws the swatch with its outline and focus ring edges.
func renderSwatch(style picker.SwatchStyle, theme Theme, bg BgStyle) string {
	left, right := " ", " "
	edge := lipgloss.NewStyle()
	switch {
	case style.ShowFocusRing:
		left, right = "▐", "▌"
		edge = edge.Foreground(lipgloss.Color(theme.BorderFocus))
	case style.ShowOutline:
		left, right = "▕", "▏"
		edge = edge.Foreground(lipgloss.Color(theme.Border))
	}

	hex, err := colormodel.ToHex(style.Fill)
	var fill string
	if err != nil {
		fill = bg.Render(padRight("?", swatchWidth), lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint)))
	} else {
		fill = block(swatchWidth, hex)
	}
	return bg.Render(left, edge) + fill + bg.Render(right, edge)
}

// renderRow formats one preference line.
func (m Model) renderRow(r *row, width int, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	styles := m.theme.Styles()
	labelStyle, nameStyle, valueStyle := styles.Text, styles.FaintText, styles.MutedText
	if selected {
		bgColor = m.theme.SelectionBg
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		labelStyle, nameStyle, valueStyle = sel.Bold(true), sel, sel
	}
	bg := NewBgStyle(bgColor)

	marker := "  "
	if selected {
		marker = "❯ "
	}

	parts := []string{
		bg.Render(marker, labelStyle),
		bg.Render(padRight(truncate(r.def.Label, labelWidth), labelWidth), labelStyle),
		renderSwatch(r.widget.Swatch(), m.theme, bg),
		bg.Spaces(2),
	}

	if !r.widget.Options().InputInDialog {
		if r.editing {
			parts = append(parts, r.hex.View())
		} else {
			parts = append(parts, bg.Render(padRight(r.widget.Hex(), r.hex.Width), valueStyle))
		}
		parts = append(parts, bg.Spaces(2))
	}

	if c := r.widget.State().Components(); !r.widget.Options().DisableTransparency && c.A < 1 {
		parts = append(parts, bg.Render(fmt.Sprintf("%3.0f%%", c.A*100), valueStyle), bg.Spaces(2))
	}
	parts = append(parts, bg.Render(r.def.Name, nameStyle))

	return bg.FillLine(strings.Join(parts, ""), width)
}
