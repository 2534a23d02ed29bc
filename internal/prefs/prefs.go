// Package prefs handles persistence of the terminal color preferences edited
// by swatch. Preferences are stored in ~/.config/swatch/prefs.toml by
// default; a path ending in .yaml or .yml is read and written as YAML.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Prefs holds the persisted preferences.
type Prefs struct {
	Theme  string            `toml:"theme" yaml:"theme"`
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

const (
	defaultPrefsPath = "~/.config/swatch/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// DefaultTheme returns the UI theme used when none is stored.
func DefaultTheme() string {
	return defaultTheme
}

// Defaults returns preferences with the default theme and every known color
// at its default value.
func Defaults() Prefs {
	p := Prefs{Theme: defaultTheme, Colors: make(map[string]string, len(definitions))}
	for _, d := range definitions {
		p.Colors[d.Name] = d.Default
	}
	return p
}

// Color returns the stored value for name, or its default when unset.
func (p Prefs) Color(name string) string {
	if v := strings.TrimSpace(p.Colors[name]); v != "" {
		return v
	}
	if d, ok := Lookup(name); ok {
		return d.Default
	}
	return ""
}

// WithColor returns a copy of p with name set to value.
func (p Prefs) WithColor(name, value string) Prefs {
	out := Prefs{Theme: p.Theme, Colors: make(map[string]string, len(p.Colors)+1)}
	maps.Copy(out.Colors, p.Colors)
	out.Colors[name] = value
	return out
}

// Load reads preferences from the given path. When the file is unreadable
// or malformed it still returns usable defaults, alongside the error for the
// caller to report.
func Load(path string) (Prefs, error) {
	prefs, err := Read(path)
	if err != nil {
		return Defaults(), err
	}
	return prefs, nil
}

// Read is the strict form of Load: a missing file yields defaults, but
// unreadable or malformed files are reported. Unknown color names are kept;
// known names missing from the file get their defaults.
func Read(path string) (Prefs, error) {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, fmt.Errorf("resolve path: %w", err)
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("open prefs: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, fmt.Errorf("read prefs: %w", err)
	}

	var stored Prefs
	if err := unmarshal(resolved, bytes, &stored); err != nil {
		return prefs, fmt.Errorf("parse prefs: %w", err)
	}

	if strings.TrimSpace(stored.Theme) != "" {
		prefs.Theme = stored.Theme
	}
	for name, value := range stored.Colors {
		if strings.TrimSpace(value) != "" {
			prefs.Colors[name] = value
		}
	}

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
// The file is replaced atomically.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := marshal(resolved, p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := writeAtomic(resolved, bytes); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// writeAtomic replaces path with data through a temporary file in the same
// directory, so readers never observe a truncated or partial file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// ResolvePath expands ~ and returns the absolute preferences path. An empty
// path resolves to the default location.
func ResolvePath(path string) (string, error) {
	return resolvePath(path)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func unmarshal(path string, data []byte, p *Prefs) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, p)
	}
	return toml.Unmarshal(data, p)
}

func marshal(path string, p Prefs) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(p)
	}
	return toml.Marshal(p)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
