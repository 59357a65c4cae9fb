package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"thbudget"
)

var entriesCmd = &cobra.Command{
	Use:   "entries <document>",
	Short: "Print classified entries with their nesting levels",
	Long: `Entries runs extraction up to classification and level assignment and
prints one line per entry: level, entry type and text, tab separated.
Fiscal-year entries carry no level and print "-". Useful for inspecting
why a document produced an unexpected tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := thbudget.Open(args[0]).Entries()
		if err != nil {
			return err
		}
		for _, entry := range entries {
			level := "-"
			if entry.Leveled {
				level = strconv.Itoa(entry.Level)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", level, entry.Type, entry.Text())
		}
		return nil
	},
}
