// Package config loads swatch's TOML configuration file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/swatch/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	prefs_path = "~/.config/swatch/prefs.toml"
//	commit_delay_ms = 100
//	debounce = "fixed"        # or "trailing"
//	input_in_dialog = false
//	log_file = "~/.local/state/swatch/swatch.log"
//
// Every field is optional. Paths get tilde expansion and are made absolute.
// A non-positive commit_delay_ms keeps the 100ms default.
//
// # Error Handling
//
// Load returns errors for unreadable files, malformed TOML and unknown
// debounce policies. A missing file is not an error.
package config
