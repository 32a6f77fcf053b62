package platform

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Missing File Yields Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("Reads Values", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "data_file: ~/notes/mine.yaml\nformat: yaml\nlog_level: debug\ndirect_write: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "notes", "mine.yaml"), cfg.DataFile)
		assert.Equal(t, "yaml", cfg.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Level())
		assert.True(t, cfg.DirectWrite)
	})

	t.Run("Partial File Keeps Defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("direct_write: true\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Level())
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: [yaml"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Config{DataFile: "/tmp/notes.json", Format: "json", LogLevel: "warn"}

	require.NoError(t, WriteConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, slog.LevelWarn, got.Level())
}

func TestConfigPath_Env(t *testing.T) {
	t.Setenv(ConfigEnv, "/custom/config.yaml")

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestConfig_Level_Unknown(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "chatty"}.Level())
	assert.Equal(t, slog.LevelInfo, Config{}.Level())
}

func TestResolveDataFile(t *testing.T) {
	wd := t.TempDir()

	assert.Equal(t, "/explicit.json", ResolveDataFile("/explicit.json", Config{DataFile: "/cfg.json"}, wd))
	assert.Equal(t, "/cfg.json", ResolveDataFile("", Config{DataFile: "/cfg.json"}, wd))

	sub := filepath.Join(wd, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(wd, DefaultDataFile), []byte("[]"), 0644))
	assert.Equal(t, filepath.Join(wd, DefaultDataFile), ResolveDataFile("", Config{}, sub))
}
