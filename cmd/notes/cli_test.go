package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against an isolated config.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables survive between executions.
	verbose, fileFlag, configFlag = false, "", ""
	addTitle, addBody, editTitle, editBody = "", "", "", ""
	showDate, showTitle, showJSON, showTable = "", "", false, false
	configForce = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_Commands(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.json")
	cfg := filepath.Join(dir, "config.yaml")

	out, err := execute(t, "--config", cfg, "-f", file, "add", "--title", "Groceries", "--body", "Milk,eggs")
	require.NoError(t, err)
	assert.Contains(t, out, "Note 1 saved.")

	_, err = execute(t, "--config", cfg, "-f", file, "add", "--title", "Work", "--body", "Finish report")
	require.NoError(t, err)

	_, err = execute(t, "--config", cfg, "-f", file, "edit", "1", "--title", "Groceries", "--body", "Milk,eggs,bread")
	require.NoError(t, err)

	_, err = execute(t, "--config", cfg, "-f", file, "edit", "9", "--title", "x")
	assert.Error(t, err)

	_, err = execute(t, "--config", cfg, "-f", file, "edit", "one")
	assert.Error(t, err)

	_, err = execute(t, "--config", cfg, "-f", file, "delete", "2")
	require.NoError(t, err)

	out, err = execute(t, "--config", cfg, "-f", file, "show", "--json")
	require.NoError(t, err)
	var notes []core.Note
	require.NoError(t, json.Unmarshal([]byte(out), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Milk,eggs,bread", notes[0].Body)

	today := core.FormatTimestamp(time.Now())[:10]
	out, err = execute(t, "--config", cfg, "-f", file, "show", "--date", today, "--title", "Groc*")
	require.NoError(t, err)
	assert.Contains(t, out, "ID: 1, Title: Groceries")

	out, err = execute(t, "--config", cfg, "-f", file, "show", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "TIMESTAMP")

	out, err = execute(t, "--config", cfg, "-f", file, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "note_count: 1")
	assert.Contains(t, out, "format: json")
}

func TestCLI_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.json")
	require.NoError(t, os.WriteFile(file, []byte("[{"), 0644))

	_, err := execute(t, "--config", filepath.Join(dir, "config.yaml"), "-f", file, "show")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrCorruptData)

	raw, _ := os.ReadFile(file)
	assert.Equal(t, "[{", string(raw))
}

func TestCLI_ConfigInit(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "conf", "config.yaml")
	file := filepath.Join(dir, "mine.yaml")

	out, err := execute(t, "--config", cfg, "-f", file, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, cfg)

	_, err = execute(t, "--config", cfg, "config", "init")
	assert.Error(t, err, "refuses to overwrite")

	// The configured data file is used when --file is absent.
	_, err = execute(t, "--config", cfg, "add", "--title", "t")
	require.NoError(t, err)
	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "- note_id: 1"))

	out, err = execute(t, "--config", cfg, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "data_file: "+file)
}

func TestCLI_InteractiveByDefault(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.json")

	verbose, fileFlag, configFlag = false, "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("add\nhello\nworld\nexit\n"))
	rootCmd.SetArgs([]string{"--config", filepath.Join(dir, "config.yaml"), "-f", file})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), msgSaved)
	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"title": "hello"`)
}

func TestFollowEvents(t *testing.T) {
	store, path := newTestStore(t)
	_, err := store.Add(context.Background(), "a", "b")
	require.NoError(t, err)

	events := make(chan lifecycle.Event, 2)
	events <- core.Event{Type: core.EventModify, Path: path}
	close(events)

	var counts []int
	err = followEvents(context.Background(), store, events, func(e core.Event, n int) {
		counts = append(counts, n)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, counts)
}
