package platform

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	notes []core.Note
}

func (m *memRepo) Load(ctx context.Context) ([]core.Note, bool, error) {
	return m.notes, m.notes != nil, nil
}

func (m *memRepo) Save(ctx context.Context, notes []core.Note) error {
	m.notes = notes
	return nil
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local)

	t.Run("File Adapter", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.yaml")
		store, err := New(ctx, path, WithClock(func() time.Time { return fixed }))
		require.NoError(t, err)

		n, err := store.Add(ctx, "t", "b")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-04 05:06:07", n.Timestamp)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(raw), "- note_id: 1"), "yaml inferred from extension: %s", raw)
	})

	t.Run("Forced Format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.db")
		store, err := New(ctx, path, WithFormat("json"), WithDirectWrite(true))
		require.NoError(t, err)

		_, err = store.Add(ctx, "t", "b")
		require.NoError(t, err)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(raw), "["))
	})

	t.Run("Injected Repository", func(t *testing.T) {
		repo := &memRepo{}
		store, err := New(ctx, "ignored", WithRepository(repo))
		require.NoError(t, err)

		_, err = store.Add(ctx, "t", "b")
		require.NoError(t, err)
		assert.Len(t, repo.notes, 1)
	})

	t.Run("Unknown Format", func(t *testing.T) {
		_, err := New(ctx, "notes.json", WithFormat("toml"))
		assert.Error(t, err)
	})
}
