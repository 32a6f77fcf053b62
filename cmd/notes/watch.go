package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/aretw0/lifecycle"
	adapter "github.com/aretw0/notekeeper/pkg/adapters/lifecycle"
	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report changes of the data file made by other processes",
	Long: `Watch follows the data file and prints a line, with the reloaded
note count, every time it changes. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if err := os.MkdirAll(filepath.Dir(dataFile), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		store, repo, err := openStore(ctx)
		if err != nil {
			return err
		}

		w, ok := repo.(core.Watchable)
		if !ok {
			return fmt.Errorf("repository does not support watching")
		}

		events, err := w.Watch(ctx)
		if err != nil {
			return err
		}

		src := adapter.NewSource(events)
		if err := src.Start(ctx); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (%d notes)\n", dataFile, store.Len())
		return followEvents(ctx, store, src.Events(), func(e core.Event, count int) {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %d notes\n", e.Type, e.Path, count)
		})
	},
}

// followEvents reloads store on each event and reports the new size.
// A file that cannot be decoded is logged and skipped.
func followEvents(ctx context.Context, store *core.Store, events <-chan lifecycle.Event, report func(core.Event, int)) error {
	for ev := range events {
		e, ok := ev.(core.Event)
		if !ok {
			continue
		}
		if err := store.Reload(ctx); err != nil {
			slog.Warn("reload failed", "path", e.Path, "error", err)
			continue
		}
		report(e, store.Len())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
