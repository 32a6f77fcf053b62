package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/notekeeper/internal/platform"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			p, err := platform.ConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			path = p
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		cfg := platform.DefaultConfig()
		cfg.DataFile = fileFlag
		if err := platform.WriteConfig(path, cfg); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file created at:", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "data_file: %s\nformat: %s\nlog_level: %s\ndirect_write: %t\n",
			dataFile, appConfig.Format, appConfig.LogLevel, appConfig.DirectWrite)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}
