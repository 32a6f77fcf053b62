package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/notekeeper/pkg/core"
)

// options holds the internal configuration for a notekeeper store.
type options struct {
	repository  core.Repository
	logger      *slog.Logger
	clock       core.Clock
	format      string
	directWrite bool
	debounce    time.Duration
}

// Option defines a functional option for configuring a store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository:  nil,
		logger:      nil,
		clock:       time.Now,
		format:      "",
		directWrite: false,
		debounce:    0, // adapter default
	}
}

// WithLogger sets the logger for the store and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source used to stamp notes.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithFormat forces the data file format ("json" or "yaml").
// By default the format is inferred from the file extension.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithDirectWrite overwrites the data file in place instead of
// writing a temp file and renaming it.
func WithDirectWrite(enabled bool) Option {
	return func(o *options) {
		o.directWrite = enabled
	}
}

// WithDebounce sets the coalescing window for Watch.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default file adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
