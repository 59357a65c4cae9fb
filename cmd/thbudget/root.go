package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var log = logrus.StandardLogger()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "thbudget",
	Short: "Extract budget trees from Thai government budget documents",
	Long: `thbudget reads Thai government budget documents, either the published
PDF volumes or the draft-bill .xlsx exports, and reconstructs the budget
hierarchy they describe.

The pipeline includes:
  - Positioned text extraction with ruled-table page detection
  - Stateful line classification into plans, projects, outputs and items
  - Nesting levels derived from text indentation
  - Budget tree assembly with fiscal-year allocations and sum checks`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}
	rootCmd.AddCommand(convertCmd, entriesCmd, csvCmd, checkCmd)
}
