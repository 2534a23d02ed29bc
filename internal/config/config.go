package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/swatch/internal/debounce"
)

// Config captures swatch's runtime settings.
type Config struct {
	PrefsPath     string
	CommitDelay   time.Duration
	Debounce      debounce.Policy
	InputInDialog bool
	LogFile       string
}

const (
	defaultConfigPath  = "~/.config/swatch/config.toml"
	defaultPrefsPath   = "~/.config/swatch/prefs.toml"
	defaultLogFile     = "~/.local/state/swatch/swatch.log"
	defaultCommitDelay = 100 * time.Millisecond
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PrefsPath:   mustExpand(defaultPrefsPath),
		CommitDelay: defaultCommitDelay,
		Debounce:    debounce.FixedWindow,
		LogFile:     mustExpand(defaultLogFile),
	}
}

// Load locates and parses the swatch config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PrefsPath     string `toml:"prefs_path"`
		CommitDelayMS int    `toml:"commit_delay_ms"`
		Debounce      string `toml:"debounce"`
		InputInDialog bool   `toml:"input_in_dialog"`
		LogFile       string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.PrefsPath); p != "" {
		cfg.PrefsPath = mustExpand(p)
	}
	if raw.CommitDelayMS > 0 {
		cfg.CommitDelay = time.Duration(raw.CommitDelayMS) * time.Millisecond
	}
	policy, ok := debounce.ParsePolicy(strings.ToLower(strings.TrimSpace(raw.Debounce)))
	if !ok {
		return Config{}, fmt.Errorf("parse config: unknown debounce policy %q", raw.Debounce)
	}
	cfg.Debounce = policy
	cfg.InputInDialog = raw.InputInDialog
	if p := strings.TrimSpace(raw.LogFile); p != "" {
		cfg.LogFile = mustExpand(p)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
