// Package ui provides the terminal interface for editing color preferences.
//
// The interface is a Bubble Tea program. The main screen lists every known
// preference as a row with a swatch and its hex value; enter opens a picker
// dialog for the selected row with hue, saturation/lightness and
// transparency controls.
//
// # Data flow
//
// Each row owns a picker.Widget. Every change the widget reports is handed
// to a debounce.Committer, which calls Options.Commit at most once per
// window with the latest value. Commit runs on a timer goroutine; the app
// package persists the value and records it in the state.Store.
//
// On every tick the model fetches a store snapshot. When the snapshot
// revision moved (for example because the preferences file was edited by
// hand) the new values are applied to rows that have no commit pending.
// Applying a value never schedules a commit of its own.
//
// # Dialog semantics
//
// Opening the dialog snapshots the widget. Enter keeps the edited color,
// escape or the Cancel button restores the snapshot. Restoring notifies
// listeners even when the color did not change, so the row re-commits the
// original value.
package ui
