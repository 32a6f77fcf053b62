package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle string
	addBody  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Long:  `Add a note. Its id is the current number of notes plus one.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		note, err := store.Add(cmd.Context(), addTitle, addBody)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note %d saved.\n", note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title")
	addCmd.Flags().StringVar(&addBody, "body", "", "Note body")
}
