// Package state provides thread-safe storage of the color preferences shared
// by the file watcher, the debounced committers and the UI.
//
// # Overview
//
// Three kinds of goroutine touch the preferences:
//
//	Watcher:                 Committer timers:          UI (tea loop):
//	prefs.Read() ──┐         store.Set() ──┐            store.Snapshot()
//	store.Update() ┘         prefs.Save() ─┘            on every tick
//
// The Store mediates between them with a sync.RWMutex. Snapshots are copies,
// so the UI can hold one across a render without racing the writers.
//
// # Update Semantics
//
// Update replaces the whole preference set after a reload. When the load
// failed the old data is kept and the error recorded:
//
//	store.Update(p, nil)  → Colors, Theme replaced; LastError cleared
//	store.Update(_, err)  → data unchanged; LastError = err; failures++
//
// Set and SetTheme change one entry and return the full preferences so the
// caller can persist them. RecordSave feeds the result of that write back
// into LastError and ConsecutiveFailures.
//
// Revision increases only when data actually changes, which lets the UI skip
// reconciling rows when nothing moved.
package state
