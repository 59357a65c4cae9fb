package model

import (
	"fmt"
	"strings"
)

// BuildCSVRows projects the tree onto flat spreadsheet rows, one row per
// leaf node. Ancestor headings are spread into dedicated columns
// (MINISTRY, BUDGETARY_UNIT, BUDGET_PLAN, PROJECT, OUTPUT) and intermediate
// detail levels into CATEGORY_LV<n> columns, outermost first. A leaf with
// committed multi-year allocations fans out into one row per covered fiscal
// year, replacing the amount with the allocation's amount.
func BuildCSVRows(root *BudgetItem) []Row {
	var result []Row

	root.Walk(func(node *BudgetItem, ancestors []*BudgetItem) bool {
		if !node.IsLeaf() {
			return true
		}

		row := Row{
			"REF_DOC":          node.Document,
			"REF_PAGE_NO":      node.Page,
			"ITEM_DESCRIPTION": node.Name,
			"AMOUNT":           amountValue(node.Amount),
			"OUTPUT":           "",
			"PROJECT":          "",
			"FISCAL_YEAR":      nil,
			"OBLIGED?":         len(node.FiscalYearBudgets) > 0,
		}

		var categories []string
		for _, curr := range ancestors {
			switch curr.Type {
			case TypeMinistry:
				row["MINISTRY"] = curr.Name
			case TypeBudgetaryUnit:
				row["BUDGETARY_UNIT"] = curr.Name
			case TypeBudgetPlan:
				row["BUDGET_PLAN"] = curr.Name
				row["CROSS_FUNC?"] = isCrossFunctionalPlan(curr.Name)
			case TypeProject:
				row["PROJECT"] = curr.Name
			case TypeOutput:
				row["OUTPUT"] = curr.Name
			case TypeBudgetDetail:
				categories = append(categories, curr.Name)
			}
		}

		for i, category := range categories {
			row[fmt.Sprintf("CATEGORY_LV%d", i+1)] = category
		}

		if len(node.FiscalYearBudgets) > 0 {
			for _, fyb := range node.FiscalYearBudgets {
				for year := fyb.Year; year <= fyb.YearEnd; year++ {
					fanned := make(Row, len(row))
					for k, v := range row {
						fanned[k] = v
					}
					fanned["FISCAL_YEAR"] = year
					fanned["AMOUNT"] = fyb.Amount
					result = append(result, fanned)
				}
			}
		} else {
			result = append(result, row)
		}

		return true
	})

	return result
}

// isCrossFunctionalPlan reports whether a budget plan is a cross-functional
// (integrated, แผนงานบูรณาการ) plan.
func isCrossFunctionalPlan(name string) bool {
	return strings.HasPrefix(name, "แผนงานบูรณาการ")
}
