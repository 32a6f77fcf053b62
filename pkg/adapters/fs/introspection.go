package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path" yaml:"path"`
	Format        string     `json:"format" yaml:"format"`
	AtomicWrites  bool       `json:"atomic_writes" yaml:"atomic_writes"`
	WatcherActive bool       `json:"watcher_active" yaml:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty" yaml:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.Path,
		Format:        r.serializer.Format(),
		AtomicWrites:  !r.config.DirectWrite,
		WatcherActive: r.watcherActive,
		LastSave:      r.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "file"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
