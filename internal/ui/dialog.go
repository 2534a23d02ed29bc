package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/five82/swatch/internal/picker"
)

type control int

const (
	ctlHue control = iota
	ctlPlane
	ctlSaturation
	ctlLightness
	ctlAlpha
	ctlHex
	ctlOK
	ctlCancel
)

const (
	dialogWidth = 52
	trackWidth  = 30
)

// pickerDialog edits one row's widget. Every knob movement goes straight to
// the widget's state, so the row (and its committer) see changes live.
type pickerDialog struct {
	title    string
	widget   *picker.Widget
	controls []control
	focus    int
	hex      textinput.Model
	plane    plane
}

// newPickerDialog opens the widget's dialog and returns the modal for it.
func newPickerDialog(title string, w *picker.Widget) *pickerDialog {
	w.OpenDialog()

	controls := []control{ctlHue, ctlPlane, ctlSaturation, ctlLightness}
	if !w.Options().DisableTransparency {
		controls = append(controls, ctlAlpha)
	}
	if w.Options().InputInDialog {
		controls = append(controls, ctlHex)
	}
	controls = append(controls, ctlOK, ctlCancel)

	d := &pickerDialog{
		title:    title,
		widget:   w,
		controls: controls,
		hex:      newHexInput(),
		plane:    plane{width: trackWidth, height: 6},
	}
	d.hex.SetValue(w.Hex())
	return d
}

func (d *pickerDialog) focused() control {
	return d.controls[d.focus]
}

func (d *pickerDialog) moveFocus(delta int) tea.Cmd {
	if d.focused() == ctlHex {
		// leaving the field commits it
		d.submitHex()
	}
	d.focus = (d.focus + delta + len(d.controls)) % len(d.controls)
	if d.focused() == ctlHex {
		d.hex.SetValue("")
		d.hex.Placeholder = d.widget.Hex()
		return d.hex.Focus()
	}
	return nil
}

func (d *pickerDialog) submitHex() {
	d.hex.Blur()
	display, _ := d.widget.SubmitHex(d.hex.Value())
	d.hex.SetValue(display)
}

func (d *pickerDialog) sliderFor(c control) (slider, bool) {
	switch c {
	case ctlHue:
		return hueSlider, true
	case ctlSaturation:
		return satSlider, true
	case ctlLightness:
		return litSlider, true
	case ctlAlpha:
		return alphaSlider, true
	}
	return slider{}, false
}

// adjust applies a horizontal step to the focused control.
func (d *pickerDialog) adjust(steps float64) {
	st := d.widget.State()
	if d.focused() == ctlPlane {
		d.plane.adjust(st, steps, 0)
	} else if s, ok := d.sliderFor(d.focused()); ok {
		s.adjust(st, steps)
	}
	d.hex.SetValue(d.widget.Hex())
}

// Update implements Modal.
func (d *pickerDialog) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if d.focused() == ctlHex {
			var cmd tea.Cmd
			d.hex, cmd = d.hex.Update(msg)
			return d, cmd, false
		}
		return d, nil, false
	}

	if d.focused() == ctlHex {
		switch {
		case key.Matches(km, keys.Confirm):
			// enter in the field submits and confirms
			d.submitHex()
			d.widget.Confirm()
			return d, nil, true
		case key.Matches(km, keys.Escape):
			d.widget.Cancel()
			return d, nil, true
		case key.Matches(km, keys.Tab):
			return d, d.moveFocus(1), false
		case key.Matches(km, keys.ShiftTab):
			return d, d.moveFocus(-1), false
		}
		var cmd tea.Cmd
		d.hex, cmd = d.hex.Update(km)
		return d, cmd, false
	}

	switch {
	case key.Matches(km, keys.Escape):
		d.widget.Cancel()
		return d, nil, true

	case key.Matches(km, keys.Confirm):
		if d.focused() == ctlCancel {
			d.widget.Cancel()
		} else {
			d.widget.Confirm()
		}
		return d, nil, true

	case key.Matches(km, keys.Tab):
		return d, d.moveFocus(1), false

	case key.Matches(km, keys.ShiftTab):
		return d, d.moveFocus(-1), false

	case key.Matches(km, keys.Left):
		d.adjust(-1)
	case key.Matches(km, keys.Right):
		d.adjust(1)
	case key.Matches(km, keys.BigLeft):
		d.adjust(-10)
	case key.Matches(km, keys.BigRight):
		d.adjust(10)

	case key.Matches(km, keys.Up):
		if d.focused() == ctlPlane {
			d.plane.adjust(d.widget.State(), 0, 1)
			d.hex.SetValue(d.widget.Hex())
			return d, nil, false
		}
		return d, d.moveFocus(-1), false

	case key.Matches(km, keys.Down):
		if d.focused() == ctlPlane {
			d.plane.adjust(d.widget.State(), 0, -1)
			d.hex.SetValue(d.widget.Hex())
			return d, nil, false
		}
		return d, d.moveFocus(1), false
	}

	return d, nil, false
}

// View implements Modal.
func (d *pickerDialog) View(theme Theme, width, height int) string {
	styles := theme.Styles().WithBackground(theme.Surface)
	bg := NewBgStyle(theme.Surface)
	c := d.widget.State().Components()
	inner := dialogWidth - 6

	label := func(ctl control, text string) string {
		style := styles.MutedText
		if d.focused() == ctl {
			style = styles.AccentText.Bold(true)
		}
		return bg.Render(padRight(text, 11), style)
	}

	var lines []string
	lines = append(lines,
		bg.Render(d.title, styles.Text.Bold(true)),
		bg.Render(strings.Repeat("─", inner), styles.FaintText),
		"",
	)

	preview := renderSwatch(d.widget.Swatch(), theme, bg) + bg.Space() + block(swatchWidth, d.previewColor(theme))
	lines = append(lines, preview+bg.Spaces(2)+bg.Render(d.widget.Hex(), styles.Text)+bg.Spaces(2)+
		bg.Render(truncate(d.widget.Value(), inner-2*swatchWidth-15), styles.FaintText), "")

	for _, ctl := range d.controls {
		switch ctl {
		case ctlPlane:
			planeLines := strings.Split(d.plane.render(c, d.focused() == ctlPlane), "\n")
			for i, pl := range planeLines {
				prefix := bg.Spaces(11)
				if i == 0 {
					prefix = label(ctlPlane, "S/L")
				}
				lines = append(lines, prefix+pl)
			}
		case ctlHex:
			lines = append(lines, "", label(ctlHex, "Hex")+d.hex.View())
		case ctlOK, ctlCancel:
			// rendered together below
		default:
			s, _ := d.sliderFor(ctl)
			lines = append(lines,
				label(ctl, s.label)+s.render(c, trackWidth, d.focused() == ctl, theme)+bg.Space()+bg.Render(s.format(c), styles.Text))
		}
	}

	lines = append(lines, "", d.renderButtons(theme, bg))

	content := lipgloss.NewStyle().Background(lipgloss.Color(theme.Surface)).Width(inner).
		Render(strings.Join(lines, "\n"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		BorderBackground(lipgloss.Color(theme.Surface)).
		Background(lipgloss.Color(theme.Surface)).
		Padding(1, 2).
		Width(dialogWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func (d *pickerDialog) renderButtons(theme Theme, bg BgStyle) string {
	button := func(ctl control, text string) string {
		style := lipgloss.NewStyle().Padding(0, 2).
			Background(lipgloss.Color(theme.SurfaceAlt)).
			Foreground(lipgloss.Color(theme.Text))
		if d.focused() == ctl {
			style = style.Background(lipgloss.Color(theme.SelectionBg)).
				Foreground(lipgloss.Color(theme.SelectionText)).
				Bold(true)
		}
		return style.Render(text)
	}
	return bg.Spaces(dialogWidth-6-18) + button(ctlOK, "OK") + bg.Spaces(2) + button(ctlCancel, "Cancel")
}

// previewColor is the widget's color flattened onto the dialog surface.
func (d *pickerDialog) previewColor(theme Theme) string {
	bg, _ := colorful.Hex(theme.Surface)
	return sampleHSLA(d.widget.State().Components(), bg)
}
