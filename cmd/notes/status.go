package main

import (
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of the store and its data file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, repo, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		state := map[string]any{
			store.ComponentType(): store.State(),
		}
		if intro, ok := repo.(introspection.Introspectable); ok {
			name := "repository"
			if comp, ok := repo.(introspection.Component); ok {
				name = comp.ComponentType()
			}
			state[name] = intro.State()
		}

		out, err := yaml.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
