package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	editTitle string
	editBody  string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Replace the title and body of a note",
	Long:  `Edit overwrites the title and body of a note and refreshes its timestamp.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: expected an integer", args[0])
		}

		store, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		found, err := store.Edit(cmd.Context(), id, editTitle, editBody)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("note %d not found", id)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note %d edited.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New note title")
	editCmd.Flags().StringVar(&editBody, "body", "", "New note body")
}
