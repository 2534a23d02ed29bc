package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/five82/swatch/internal/config"
	"github.com/five82/swatch/internal/prefs"
	"github.com/five82/swatch/internal/state"
	"github.com/five82/swatch/internal/ui"
)

// Options configure the swatch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // overrides prefs_path from the config file
	Debug      bool
}

// Resolve loads the config file and returns it with the absolute path of the
// preferences file to edit.
func Resolve(opts Options) (config.Config, string, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("load config: %w", err)
	}
	if p := strings.TrimSpace(opts.PrefsPath); p != "" {
		cfg.PrefsPath = p
	}
	path, err := prefs.ResolvePath(cfg.PrefsPath)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("resolve prefs path: %w", err)
	}
	return cfg, path, nil
}

// Run boots the swatch TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, path, err := Resolve(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupFileLogging(cfg.LogFile, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("starting swatch", "prefs", path, "debounce", cfg.Debounce, "commit_delay", cfg.CommitDelay)

	store := loadStore(path)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	StartWatcher(watchCtx, store, path)

	persist := newPersister(store, path)

	uiOpts := ui.Options{
		Store:         store,
		PrefsPath:     path,
		CommitDelay:   cfg.CommitDelay,
		Debounce:      cfg.Debounce,
		InputInDialog: cfg.InputInDialog,
		Commit:        persist.Commit,
		SaveTheme:     persist.SaveTheme,
	}
	return ui.Run(ctx, uiOpts)
}

// loadStore populates a store before the UI reads it. A broken file still
// leaves the defaults editable; the error is surfaced in the status line.
func loadStore(path string) *state.Store {
	store := &state.Store{}
	p, err := prefs.Load(path)
	store.Update(p, nil)
	if err != nil {
		slog.Warn("load prefs failed", "path", path, "error", err)
		store.Update(prefs.Prefs{}, err)
	}
	return store
}
