package tree

import (
	"thbudget/classify"
	"thbudget/model"
)

// budgetTypes maps entry types to node types.
var budgetTypes = map[classify.EntryType]model.BudgetType{
	classify.EntryBudgetPlan: model.TypeBudgetPlan,
	classify.EntryProject:    model.TypeProject,
	classify.EntryOutput:     model.TypeOutput,
	classify.EntryItem:       model.TypeBudgetDetail,
}

// sentinelLevel sits below every assignable level so the synthetic root is
// never popped.
const sentinelLevel = -10

// Build assembles leveled entries into a budget tree under a synthetic
// ROOT node and returns that root, even when it has a single child.
//
// A stack of open ancestors pairs each node with its entry's level. A new
// entry pops every ancestor at its level or deeper and becomes a child of
// what remains. A fiscal-year entry is not a node: its year range and
// amount attach to the most recently placed node.
//
// Amounts are parsed from entry text; an entry with no recognizable amount
// gets a stated amount of zero, not an absent one, so extraction output is
// distinguishable from trees whose amounts were never known.
func Build(entries []*classify.Entry, document string) *model.BudgetItem {
	root := model.NewRoot()

	type frame struct {
		node  *model.BudgetItem
		level int
	}
	stack := []frame{{node: root, level: sentinelLevel}}

	for _, entry := range entries {
		if entry.Type == classify.EntryFiscalYear {
			line := entry.Text()
			year, yearEnd := YearRangeFromString(line)
			owner := stack[len(stack)-1].node
			owner.AddFiscalYearBudget(model.NewFiscalYearBudget(
				line, year, yearEnd, AmountFromString(line),
			))
			continue
		}

		for len(stack) > 1 && stack[len(stack)-1].level >= entry.Level {
			stack = stack[:len(stack)-1]
		}

		node := &model.BudgetItem{
			Type:     budgetTypes[entry.Type],
			Name:     entry.Text(),
			Amount:   model.Amount(AmountFromString(entry.Text())),
			Document: document,
			Page:     entry.PageIndex(),
		}
		stack[len(stack)-1].node.AddChild(node)
		stack = append(stack, frame{node: node, level: entry.Level})
	}

	return root
}
