// Package picker is the model behind a color picker: a canonical color value,
// its HSLA components and the dialog lifecycle around them.
package picker

import "github.com/five82/swatch/internal/colormodel"

// Options mirror the picker's display switches.
type Options struct {
	// DisableTransparency hides the transparency slider.
	DisableTransparency bool
	// InputInDialog shows the hex field inside the dialog rather than next
	// to the swatch.
	InputInDialog bool
}

// Widget is a swatch that opens a modal picker. It owns the picker State,
// the dialog-open flag and the value snapshot taken when the dialog opens.
type Widget struct {
	opts       Options
	state      *State
	dialogOpen bool
	cancel     *snapshot
}

// NewWidget returns a widget holding value.
func NewWidget(value string, opts Options) *Widget {
	return &Widget{opts: opts, state: NewState(value)}
}

// Options returns the widget's display options.
func (w *Widget) Options() Options { return w.opts }

// State exposes the underlying picker state for sub-widgets.
func (w *Widget) State() *State { return w.state }

// Value returns the canonical color string.
func (w *Widget) Value() string { return w.state.Value() }

// SetValue sets the value from outside, e.g. when the preference changes.
func (w *Widget) SetValue(value string) bool { return w.state.SetValue(value) }

// OnChange registers a change listener on the underlying state.
func (w *Widget) OnChange(fn ChangeFunc) func() { return w.state.OnChange(fn) }

// DialogOpen reports whether the picker dialog is showing.
func (w *Widget) DialogOpen() bool { return w.dialogOpen }

// OpenDialog shows the picker and remembers the current value for Cancel.
func (w *Widget) OpenDialog() {
	snap := w.state.snapshot()
	w.cancel = &snap
	w.dialogOpen = true
}

// CloseDialog hides the picker and discards the cancel snapshot.
func (w *Widget) CloseDialog() {
	w.dialogOpen = false
	w.cancel = nil
}

// Confirm closes the dialog and keeps the edited value.
func (w *Widget) Confirm() {
	w.CloseDialog()
}

// Cancel closes the dialog and restores the value from when it was opened.
// Listeners are notified of the restoration even if nothing was edited.
func (w *Widget) Cancel() {
	snap := w.cancel
	w.CloseDialog()
	if snap == nil {
		return
	}
	w.state.restore(*snap)
}

// Hex returns the display hex of the current value, or "" when unset.
func (w *Widget) Hex() string {
	if w.state.Value() == "" {
		return ""
	}
	hex, err := colormodel.ToHex(w.state.Value())
	if err != nil {
		return ""
	}
	return hex
}

// SubmitHex applies text typed into the hex field. Valid colors are stored
// as upper-case hex; for invalid text the state is left alone. The returned
// string is what the field should display afterwards.
func (w *Widget) SubmitHex(text string) (string, bool) {
	hex, err := colormodel.ToHex(text)
	if err != nil {
		return w.Hex(), false
	}
	w.state.SetValue(hex)
	return hex, true
}

// Swatch returns the current swatch presentation.
func (w *Widget) Swatch() SwatchStyle {
	return Present(w.state.Value(), w.dialogOpen)
}
