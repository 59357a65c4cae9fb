package model

import (
	"encoding/json"
	"fmt"
)

// treeJSON is the wire form of a BudgetItem.
type treeJSON struct {
	BudgetType       string     `json:"budget_type"`
	Name             string     `json:"name"`
	Amount           *float64   `json:"amount"`
	Document         string     `json:"document"`
	Page             int        `json:"page"`
	FiscalYearBudget []fybJSON  `json:"fiscal_year_budget"`
	Children         []treeJSON `json:"children"`
}

type fybJSON struct {
	Line    string  `json:"line"`
	Year    int     `json:"year"`
	YearEnd int     `json:"year_end"`
	Amount  float64 `json:"amount"`
}

// MarshalTree serializes a budget tree to its nested JSON form.
func MarshalTree(root *BudgetItem) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot marshal nil tree")
	}
	return json.Marshal(toTreeJSON(root))
}

// MarshalTreeIndent is MarshalTree with indentation, for files meant to be
// read by people.
func MarshalTreeIndent(root *BudgetItem) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot marshal nil tree")
	}
	return json.MarshalIndent(toTreeJSON(root), "", "    ")
}

func toTreeJSON(b *BudgetItem) treeJSON {
	out := treeJSON{
		BudgetType:       string(b.Type),
		Name:             b.Name,
		Amount:           b.Amount,
		Document:         b.Document,
		Page:             b.Page,
		FiscalYearBudget: make([]fybJSON, 0, len(b.FiscalYearBudgets)),
		Children:         make([]treeJSON, 0, len(b.Children)),
	}
	for _, fyb := range b.FiscalYearBudgets {
		out.FiscalYearBudget = append(out.FiscalYearBudget, fybJSON{
			Line:    fyb.Line,
			Year:    fyb.Year,
			YearEnd: fyb.YearEnd,
			Amount:  fyb.Amount,
		})
	}
	for _, child := range b.Children {
		out.Children = append(out.Children, toTreeJSON(child))
	}
	return out
}

// UnmarshalTree parses the nested JSON form back into a budget tree. The
// top-level value must be a well-formed object; empty or malformed input is
// an error, never an empty tree. Every node is validated field by field and
// a bad field rejects the whole document with the offending field named.
func UnmarshalTree(data []byte) (*BudgetItem, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing budget tree: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("budget tree document must be a JSON object, got %T", raw)
	}
	return itemFromJSON(obj)
}

func itemFromJSON(obj map[string]any) (*BudgetItem, error) {
	budgetType, err := stringField(obj, "budget_type")
	if err != nil {
		return nil, err
	}
	name, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}
	document, err := stringField(obj, "document")
	if err != nil {
		return nil, err
	}
	page, err := intField(obj, "page")
	if err != nil {
		return nil, err
	}
	amount, err := optionalNumberField(obj, "amount")
	if err != nil {
		return nil, err
	}

	item, err := NewBudgetItem(budgetType, name, amount, document, page)
	if err != nil {
		return nil, err
	}

	if raw, ok := obj["fiscal_year_budget"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("field fiscal_year_budget must be an array, got %T", raw)
		}
		for _, elem := range list {
			fybObj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("fiscal_year_budget entries must be objects, got %T", elem)
			}
			fyb, err := fybFromJSON(fybObj)
			if err != nil {
				return nil, fmt.Errorf("in fiscal_year_budget of %q: %w", name, err)
			}
			item.AddFiscalYearBudget(fyb)
		}
	}

	if raw, ok := obj["children"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("field children must be an array, got %T", raw)
		}
		for _, elem := range list {
			childObj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("children entries must be objects, got %T", elem)
			}
			child, err := itemFromJSON(childObj)
			if err != nil {
				return nil, err
			}
			item.AddChild(child)
		}
	}

	return item, nil
}

func fybFromJSON(obj map[string]any) (FiscalYearBudget, error) {
	line, err := stringField(obj, "line")
	if err != nil {
		return FiscalYearBudget{}, err
	}
	year, err := intField(obj, "year")
	if err != nil {
		return FiscalYearBudget{}, err
	}
	amount, err := numberField(obj, "amount")
	if err != nil {
		return FiscalYearBudget{}, err
	}
	// year_end is optional; absent means single-year.
	yearEnd := 0
	if raw, ok := obj["year_end"]; ok && raw != nil {
		yearEnd, err = intField(obj, "year_end")
		if err != nil {
			return FiscalYearBudget{}, err
		}
	}
	return NewFiscalYearBudget(line, year, yearEnd, amount), nil
}

func stringField(obj map[string]any, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %v (%T)", key, raw, raw)
	}
	return s, nil
}

func numberField(obj map[string]any, key string) (float64, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	n, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q must be a number, got %v (%T)", key, raw, raw)
	}
	return n, nil
}

func optionalNumberField(obj map[string]any, key string) (*float64, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil, nil
	}
	n, ok := raw.(float64)
	if !ok {
		return nil, fmt.Errorf("field %q must be a number or null, got %v (%T)", key, raw, raw)
	}
	return &n, nil
}

func intField(obj map[string]any, key string) (int, error) {
	n, err := numberField(obj, key)
	if err != nil {
		return 0, err
	}
	if n != float64(int(n)) {
		return 0, fmt.Errorf("field %q must be an integer, got %v", key, n)
	}
	return int(n), nil
}
