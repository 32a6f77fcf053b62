package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/notekeeper"
	"github.com/aretw0/notekeeper/internal/platform"
	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	fileFlag   string
	configFlag string

	// Resolved in PersistentPreRunE.
	appConfig platform.Config
	dataFile  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "A personal notebook kept in a flat file",
	Long: `notes keeps your notes in a single JSON (or YAML) file.
Run without a subcommand to start the interactive prompt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath := configFlag
		if configPath == "" {
			p, err := platform.ConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			configPath = p
		}

		cfg, err := platform.LoadConfig(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		dataFile = platform.ResolveDataFile(fileFlag, cfg, wd)
		logger.Debug("using data file", "path", dataFile, "config", configPath)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		return newREPL(store, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fatal("Error", err)
	}
}

// storeOptions maps the loaded configuration to store options.
func storeOptions() []notekeeper.Option {
	return []notekeeper.Option{
		notekeeper.WithLogger(slog.Default()),
		notekeeper.WithFormat(appConfig.Format),
		notekeeper.WithDirectWrite(appConfig.DirectWrite),
	}
}

// openStore loads the store for the resolved data file.
func openStore(ctx context.Context) (*core.Store, core.Repository, error) {
	repo, err := notekeeper.Open(dataFile, storeOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", dataFile, err)
	}

	store, err := notekeeper.New(ctx, dataFile, append(storeOptions(), notekeeper.WithRepository(repo))...)
	if err != nil {
		return nil, nil, err
	}
	return store, repo, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Data file (default: nearest notes.json)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: $"+platform.ConfigEnv+" or user config dir)")
}
