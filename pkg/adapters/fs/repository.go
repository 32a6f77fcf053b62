package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/notekeeper/pkg/core"
)

// DefaultFileMode is the permission used for newly written data files.
const DefaultFileMode os.FileMode = 0644

// Repository implements core.Repository on top of a single data file.
type Repository struct {
	Path       string
	serializer Serializer
	config     Config

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// Config holds the configuration for the file repository.
type Config struct {
	Path        string
	Format      string        // "json", "yaml" or empty to infer from the extension
	DirectWrite bool          // Overwrite in place instead of temp file + rename
	FileMode    os.FileMode   // Defaults to DefaultFileMode
	Debounce    time.Duration // Watch coalescing window, defaults to 50ms
	Logger      *slog.Logger
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) (*Repository, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("data file path is required")
	}

	serializer, err := SerializerFor(config.Path, config.Format)
	if err != nil {
		return nil, err
	}

	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Repository{
		Path:       config.Path,
		serializer: serializer,
		config:     config,
	}, nil
}

// Load reads and decodes the data file.
// A missing file is reported with exists=false and no error.
func (r *Repository) Load(ctx context.Context) ([]core.Note, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(r.Path)
	if errors.Is(err, fs.ErrNotExist) {
		r.config.Logger.Debug("data file not found", "path", r.Path)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", r.Path, err)
	}

	notes, err := r.serializer.Parse(bytes.NewReader(data))
	if err != nil {
		r.config.Logger.Warn("data file could not be decoded", "path", r.Path, "error", err)
		return nil, true, fmt.Errorf("%s: %w", r.Path, err)
	}

	r.config.Logger.Debug("data file loaded", "path", r.Path, "count", len(notes))
	return notes, true, nil
}

// Save serializes notes and replaces the data file.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.serializer.Serialize(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if dir := filepath.Dir(r.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if r.config.DirectWrite {
		err = os.WriteFile(r.Path, data, r.config.FileMode)
	} else {
		err = writeFileAtomic(r.Path, data, r.config.FileMode)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", r.Path, err)
	}

	r.recordSave()
	r.config.Logger.Debug("data file saved", "path", r.Path, "count", len(notes))
	return nil
}

func (r *Repository) recordSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastSave = &now
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
