// Package app wires configuration, state, persistence and the UI into the
// swatch application.
//
// Run is the composition root:
//
//  1. Load ~/.config/swatch/config.toml (or the path given) and resolve the
//     preferences file
//  2. Route logging to a file, since the terminal belongs to the TUI
//  3. Read the preferences into a shared state.Store
//  4. Start a file watcher that reloads the store when the file changes on
//     disk, re-adding the watch with backoff if it is lost
//  5. Start the TUI with a persister as its commit sink and block until exit
//
// The persister serializes writes: each commit updates the store and then
// saves the whole preferences file.
package app
