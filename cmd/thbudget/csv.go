package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"thbudget/model"
)

var csvOut string

// Column order of the spreadsheet projection. Category columns are
// inserted between PROJECT and ITEM_DESCRIPTION, outermost level first.
var (
	csvHeadColumns = []string{
		"REF_DOC", "REF_PAGE_NO", "MINISTRY", "BUDGETARY_UNIT",
		"BUDGET_PLAN", "CROSS_FUNC?", "OUTPUT", "PROJECT",
	}
	csvTailColumns = []string{
		"ITEM_DESCRIPTION", "FISCAL_YEAR", "AMOUNT", "OBLIGED?",
	}
)

var csvCmd = &cobra.Command{
	Use:   "csv <tree.json>",
	Short: "Flatten an extracted budget tree into spreadsheet rows",
	Long: `Csv reads a budget tree JSON file produced by convert and writes one
CSV row per leaf item, with ancestor headings spread into dedicated
columns. Items with committed multi-year allocations fan out into one row
per covered fiscal year.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := readTree(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if csvOut != "" {
			f, err := os.Create(csvOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return writeCSV(out, model.BuildCSVRows(root))
	},
}

func init() {
	csvCmd.Flags().StringVarP(
		&csvOut, "output", "o", "", "write CSV to this file instead of stdout",
	)
}

func readTree(path string) (*model.BudgetItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return model.UnmarshalTree(data)
}

func writeCSV(out io.Writer, rows []model.Row) error {
	header := csvHeader(rows)

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, column := range header {
			record[i] = cellString(row[column])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func csvHeader(rows []model.Row) []string {
	header := append([]string(nil), csvHeadColumns...)
	depth := categoryDepth(rows)
	for level := 1; level <= depth; level++ {
		header = append(header, fmt.Sprintf("CATEGORY_LV%d", level))
	}
	return append(header, csvTailColumns...)
}

func categoryDepth(rows []model.Row) int {
	depth := 0
	for _, row := range rows {
		for key := range row {
			suffix, ok := strings.CutPrefix(key, "CATEGORY_LV")
			if !ok {
				continue
			}
			if level, err := strconv.Atoi(suffix); err == nil && level > depth {
				depth = level
			}
		}
	}
	return depth
}

func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
