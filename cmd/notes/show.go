package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/notekeeper/pkg/core"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	showDate  string
	showTitle string
	showJSON  bool
	showTable bool
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"list", "ls"},
	Short:   "Show notes, optionally filtered by date prefix or title",
	Long: `Show notes in insertion order.

--date is a textual prefix of the timestamp: "2024-01-1" matches
"2024-01-10 ..." as well as "2024-01-15 ...".
--title is a glob such as "work*".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		notes, err := store.Search(core.Query{DatePrefix: showDate, TitlePattern: showTitle})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case showJSON:
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "    ")
			if err := encoder.Encode(notes); err != nil {
				return fmt.Errorf("failed to encode JSON: %w", err)
			}
		case showTable:
			renderTable(out, notes)
		default:
			printNotes(out, notes)
		}
		return nil
	},
}

// printNotes writes one line per note.
func printNotes(w io.Writer, notes []core.Note) {
	for _, n := range notes {
		fmt.Fprintf(w, "ID: %d, Title: %s, Body: %s, Created: %s\n", n.ID, n.Title, n.Body, n.Timestamp)
	}
}

// renderTable writes notes as a bordered table.
func renderTable(w io.Writer, notes []core.Note) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Body", WidthMax: 60},
	})

	t.AppendHeader(table.Row{"ID", "Title", "Body", "Timestamp"})
	for _, n := range notes {
		t.AppendRow(table.Row{n.ID, n.Title, n.Body, n.Timestamp})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(notes)})
	t.Render()
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showDate, "date", "d", "", "Timestamp prefix (e.g. 2024-01-10)")
	showCmd.Flags().StringVarP(&showTitle, "title", "t", "", "Title glob (e.g. \"work*\")")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().BoolVar(&showTable, "table", false, "Output as a table")
}
