package platform

import (
	"context"

	"github.com/aretw0/notekeeper/pkg/adapters/fs"
	"github.com/aretw0/notekeeper/pkg/core"
)

// New builds the repository for path and loads a store from it.
//
//	store, err := notekeeper.New(ctx, "notes.json", notekeeper.WithLogger(logger))
func New(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepository(path, o)
	if err != nil {
		return nil, err
	}

	return core.NewStore(ctx, repo, core.StoreConfig{
		Clock:  o.clock,
		Logger: o.logger,
	})
}

// Open returns the repository New would use, without loading a store.
func Open(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(path, o)
}

func initRepository(path string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	repo, err := fs.NewRepository(fs.Config{
		Path:        path,
		Format:      o.format,
		DirectWrite: o.directWrite,
		Debounce:    o.debounce,
		Logger:      o.logger,
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}
