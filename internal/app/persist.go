package app

import (
	"log/slog"
	"sync"

	"github.com/five82/swatch/internal/prefs"
	"github.com/five82/swatch/internal/state"
)

// persister applies committed values to the store and writes the result to
// disk. Commits arrive on debounce timer goroutines, one per row, so writes
// are serialized to keep the file in step with the store.
type persister struct {
	mu    sync.Mutex
	store *state.Store
	path  string
}

func newPersister(store *state.Store, path string) *persister {
	return &persister{store: store, path: path}
}

// Commit stores value under name and saves the preferences file.
func (p *persister) Commit(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.save(p.store.Set(name, value), "pref", name)
}

// SaveTheme stores the UI theme and saves the preferences file.
func (p *persister) SaveTheme(theme string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.save(p.store.SetTheme(theme), "theme", theme)
}

func (p *persister) save(next prefs.Prefs, key, value string) {
	err := prefs.Save(p.path, next)
	p.store.RecordSave(err)
	if err != nil {
		slog.Error("save prefs failed", key, value, "path", p.path, "error", err)
		return
	}
	slog.Debug("prefs saved", key, value, "path", p.path)
}
