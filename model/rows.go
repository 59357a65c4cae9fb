package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is the flattened projection of one tree node or one fiscal-year
// record. Node rows carry a depth-tagged "name_<depth>" key (depth starting
// at 1) from which the ancestry is reconstructed when rebuilding the tree.
type Row map[string]any

// RowTypeFiscalYear marks a flattened fiscal-year record.
const RowTypeFiscalYear = "FISCAL_YEAR_BUDGET"

// ToRows flattens the tree depth-first in pre-order. Each node becomes one
// row; each of its fiscal-year records becomes its own row immediately after
// the node's row and before any child rows. This interleaving is relied on
// by BuildTreeByRows and must not change.
func (b *BudgetItem) ToRows() []Row {
	return b.toRows(1)
}

func (b *BudgetItem) toRows(depth int) []Row {
	rows := []Row{{
		"error_message":               b.Diagnostic(),
		"budget_type":                 string(b.Type),
		fmt.Sprintf("name_%d", depth): b.Name,
		"amount":                      amountValue(b.Amount),
		"document":                    b.Document,
		"page":                        b.Page,
	}}

	for _, fyb := range b.FiscalYearBudgets {
		rows = append(rows, Row{
			"error_message":               "",
			"budget_type":                 RowTypeFiscalYear,
			fmt.Sprintf("name_%d", depth): fyb.Line,
			"fiscal_year":                 fyb.Year,
			"fiscal_year_end":             fyb.YearEnd,
			"amount":                      fyb.Amount,
		})
	}

	for _, child := range b.Children {
		rows = append(rows, child.toRows(depth+1)...)
	}

	return rows
}

// BuildTreeByRows reconstructs a tree from its flattened row form. Rows are
// regrouped by the depth encoded in each row's name_<depth> key; a
// fiscal-year row appearing before any parent node row is an error. A
// synthetic ROOT holds the reconstructed forest; when it ends up with
// exactly one child, that child is returned instead of the wrapper.
func BuildTreeByRows(rows []Row) (*BudgetItem, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot build tree from empty rows")
	}

	type frame struct {
		node  *BudgetItem
		level int
	}
	root := NewRoot()
	stack := []frame{{node: root, level: 0}}

	for _, row := range rows {
		budgetType, err := rowString(row, "budget_type")
		if err != nil {
			return nil, err
		}

		if budgetType == RowTypeFiscalYear {
			if len(stack) == 0 || stack[len(stack)-1].level < 1 {
				return nil, fmt.Errorf("fiscal-year row %v has no parent node row", row)
			}
			_, name, err := rowName(row)
			if err != nil {
				return nil, err
			}
			year, err := rowInt(row, "fiscal_year")
			if err != nil {
				return nil, err
			}
			yearEnd, err := rowInt(row, "fiscal_year_end")
			if err != nil {
				return nil, err
			}
			amount, ok := rowAmount(row)
			if !ok {
				return nil, fmt.Errorf("fiscal-year row %v has no amount", row)
			}
			stack[len(stack)-1].node.AddFiscalYearBudget(
				NewFiscalYearBudget(name, year, yearEnd, *amount))
			continue
		}

		level, name, err := rowName(row)
		if err != nil {
			return nil, err
		}

		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}

		document, _ := rowString(row, "document")
		page, _ := rowInt(row, "page")
		amount, _ := rowAmount(row)
		node, err := NewBudgetItem(budgetType, name, nil, document, page)
		if err != nil {
			return nil, fmt.Errorf("building node from row %v: %w", row, err)
		}
		node.Amount = amount

		if len(stack) > 0 {
			stack[len(stack)-1].node.AddChild(node)
		}
		stack = append(stack, frame{node: node, level: level})
	}

	if len(root.Children) == 1 {
		return root.Children[0], nil
	}
	return root, nil
}

// rowName finds the single depth-tagged name key of a row.
func rowName(row Row) (level int, name string, err error) {
	for key, value := range row {
		if !strings.HasPrefix(key, "name_") {
			continue
		}
		level, err = strconv.Atoi(strings.TrimPrefix(key, "name_"))
		if err != nil {
			return 0, "", fmt.Errorf("malformed depth key %q: %w", key, err)
		}
		name, _ = value.(string)
		return level, name, nil
	}
	return 0, "", fmt.Errorf("cannot find depth key in row %v", row)
}

func rowString(row Row, key string) (string, error) {
	raw, ok := row[key]
	if !ok {
		return "", fmt.Errorf("row %v does not contain %s", row, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %v (%T)", key, raw, raw)
	}
	return s, nil
}

func rowInt(row Row, key string) (int, error) {
	raw, ok := row[key]
	if !ok {
		return 0, fmt.Errorf("row %v does not contain %s", row, key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	}
	return 0, fmt.Errorf("field %q must be an integer, got %v (%T)", key, raw, raw)
}

// rowAmount reads an amount cell, distinguishing absent/nil from zero.
func rowAmount(row Row) (*float64, bool) {
	raw, ok := row["amount"]
	if !ok || raw == nil {
		return nil, false
	}
	switch v := raw.(type) {
	case float64:
		return &v, true
	case int:
		f := float64(v)
		return &f, true
	case *float64:
		return v, v != nil
	}
	return nil, false
}

func amountValue(amount *float64) any {
	if amount == nil {
		return nil
	}
	return *amount
}
