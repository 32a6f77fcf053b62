package notekeeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/notekeeper/internal/platform"
	"github.com/aretw0/notekeeper/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Store is a public alias for the core note store.
type Store = core.Store

// Query is a public alias for the store search query.
type Query = core.Query

// --- Configuration ---

// Option defines a functional option for configuring a store.
type Option = platform.Option

// WithLogger sets the logger for the store and its repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source used to stamp notes (useful for testing).
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithFormat forces the data file format ("json" or "yaml").
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithDirectWrite disables atomic (temp file + rename) writes.
func WithDirectWrite(enabled bool) Option {
	return platform.WithDirectWrite(enabled)
}

// WithDebounce sets the coalescing window used when watching the data file.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// --- Factory ---

// New opens the data file at path and loads a Store from it.
// A missing file yields an empty store; a malformed one fails with core.ErrCorruptData.
func New(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	return platform.New(ctx, path, opts...)
}

// Open returns the repository bound to path without loading it.
func Open(path string, opts ...Option) (core.Repository, error) {
	return platform.Open(path, opts...)
}

// FindDataFile looks upwards from startDir for a file called name.
func FindDataFile(startDir, name string) (string, error) {
	return platform.FindDataFile(startDir, name)
}
