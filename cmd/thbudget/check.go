package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"thbudget/model"
)

var checkCmd = &cobra.Command{
	Use:   "check <tree.json>",
	Short: "Verify amount consistency of an extracted budget tree",
	Long: `Check reads a budget tree JSON file produced by convert and verifies
that every node's stated amount equals the sum of its children's amounts.
Each inconsistency is reported with the page it was extracted from.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := readTree(args[0])
		if err != nil {
			return err
		}

		inconsistent := 0
		root.Walk(func(node *model.BudgetItem, ancestors []*model.BudgetItem) bool {
			if err := node.CheckSum(); err != nil {
				inconsistent++
				fmt.Fprintf(cmd.OutOrStdout(), "page %d: %v\n", node.Page, err)
			}
			return true
		})
		if inconsistent > 0 {
			return fmt.Errorf("%d inconsistent nodes", inconsistent)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "all sums consistent")
		return nil
	},
}
