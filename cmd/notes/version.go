package main

import (
	"fmt"

	"github.com/aretw0/notekeeper"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notes version %s\n", notekeeper.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
