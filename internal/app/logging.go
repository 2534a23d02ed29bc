package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

func logLevel(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// setupFileLogging routes slog (and the standard logger) to path, since the
// terminal belongs to the TUI. The returned func closes the file.
func setupFileLogging(path string, debug bool) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "swatch")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel(debug)})))
	return func() { _ = f.Close() }, nil
}

// SetupCLILogging configures slog for non-interactive subcommands.
func SetupCLILogging(w io.Writer, debug bool) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel(debug)})))
}
