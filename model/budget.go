package model

import (
	"fmt"
	"strconv"
)

// BudgetType classifies a node in the budget tree.
type BudgetType string

const (
	// TypeRoot is the synthetic root created during tree construction.
	TypeRoot BudgetType = "ROOT"
	// TypeMinistry is a ministry or an agency of equivalent rank.
	TypeMinistry BudgetType = "MINISTRY"
	// TypeBudgetaryUnit is a unit receiving a budget allocation.
	TypeBudgetaryUnit BudgetType = "BUDGETARY_UNIT"
	// TypeBudgetPlan is a budget plan (แผนงาน) heading.
	TypeBudgetPlan BudgetType = "BUDGET_PLAN"
	// TypeProject is a project (โครงการ) heading.
	TypeProject BudgetType = "PROJECT"
	// TypeOutput is an output (ผลผลิต) heading.
	TypeOutput BudgetType = "OUTPUT"
	// TypeBudgetDetail is a leaf-level budget line item.
	TypeBudgetDetail BudgetType = "BUDGET_DETAIL"
)

// ParseBudgetType validates a raw string against the known budget types.
func ParseBudgetType(s string) (BudgetType, error) {
	switch t := BudgetType(s); t {
	case TypeRoot, TypeMinistry, TypeBudgetaryUnit, TypeBudgetPlan,
		TypeProject, TypeOutput, TypeBudgetDetail:
		return t, nil
	}
	return "", fmt.Errorf("unknown budget_type %q", s)
}

// BudgetItem is one node of the budget tree. Children are owned by their
// parent and appear in document order. Amount is nil when the document does
// not state one; zero is a stated amount and is distinct from nil.
type BudgetItem struct {
	Type     BudgetType
	Name     string
	Amount   *float64
	Document string
	Page     int

	FiscalYearBudgets []FiscalYearBudget
	Children          []*BudgetItem
}

// NewBudgetItem constructs a node, validating the budget type.
func NewBudgetItem(budgetType, name string, amount *float64, document string, page int) (*BudgetItem, error) {
	t, err := ParseBudgetType(budgetType)
	if err != nil {
		return nil, err
	}
	return &BudgetItem{
		Type:     t,
		Name:     name,
		Amount:   amount,
		Document: document,
		Page:     page,
	}, nil
}

// NewRoot creates the synthetic ROOT node used to seed tree construction.
func NewRoot() *BudgetItem {
	return &BudgetItem{Type: TypeRoot, Name: "ROOT"}
}

// Amount wraps a stated amount value.
func Amount(v float64) *float64 {
	return &v
}

// AddChild appends a child in document order.
func (b *BudgetItem) AddChild(child *BudgetItem) {
	b.Children = append(b.Children, child)
}

// AddFiscalYearBudget appends a committed multi-year allocation record.
func (b *BudgetItem) AddFiscalYearBudget(fyb FiscalYearBudget) {
	b.FiscalYearBudgets = append(b.FiscalYearBudgets, fyb)
}

// IsLeaf reports whether the node has no children.
func (b *BudgetItem) IsLeaf() bool {
	return len(b.Children) == 0
}

func (b *BudgetItem) String() string {
	return b.Name
}

// CheckSum verifies the amount consistency of this node against its direct
// children. A node without a stated amount may not have children with stated
// amounts; a node with a stated amount and children requires every child to
// state an amount and their exact sum to equal the node's amount. Amounts
// are whole currency units, so the comparison is exact with no tolerance.
func (b *BudgetItem) CheckSum() error {
	if b.Amount == nil {
		for _, child := range b.Children {
			if child.Amount != nil {
				return fmt.Errorf("amount of %q is not stated but child %q states %s",
					b.Name, child.Name, formatAmount(*child.Amount))
			}
		}
		return nil
	}

	if len(b.Children) == 0 {
		return nil
	}

	sum := 0.0
	for _, child := range b.Children {
		if child.Amount == nil {
			return fmt.Errorf("amount of %q is %s but child %q has no stated amount",
				b.Name, formatAmount(*b.Amount), child.Name)
		}
		sum += *child.Amount
	}
	if *b.Amount != sum {
		return fmt.Errorf("amount of %q is %s but sum of children is %s",
			b.Name, formatAmount(*b.Amount), formatAmount(sum))
	}
	return nil
}

// Diagnostic returns a human-readable consistency report for this node, or
// the empty string when the node is consistent. It is computed on demand
// and never stored; an inconsistent tree remains fully usable.
func (b *BudgetItem) Diagnostic() string {
	if err := b.CheckSum(); err != nil {
		return fmt.Sprintf("While checking sum: %s\n", err)
	}
	return ""
}

// Walk visits the node and its descendants in pre-order, in document order.
// The visitor receives the node together with its ancestor chain, outermost
// first. Returning false stops the walk.
func (b *BudgetItem) Walk(visit func(node *BudgetItem, ancestors []*BudgetItem) bool) {
	b.walk(nil, visit)
}

func (b *BudgetItem) walk(ancestors []*BudgetItem, visit func(*BudgetItem, []*BudgetItem) bool) bool {
	if !visit(b, ancestors) {
		return false
	}
	ancestors = append(ancestors, b)
	for _, child := range b.Children {
		if !child.walk(ancestors, visit) {
			return false
		}
	}
	return true
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FiscalYearBudget is a committed allocation scoped to one BudgetItem and
// one fiscal year or span of years. It is not a tree node; it is owned
// exclusively by its parent item.
type FiscalYearBudget struct {
	Line    string // raw source line the record was parsed from
	Year    int
	YearEnd int // equal to Year when the allocation is a single year
	Amount  float64
}

// NewFiscalYearBudget creates a record; yearEnd <= 0 means single-year.
func NewFiscalYearBudget(line string, year, yearEnd int, amount float64) FiscalYearBudget {
	if yearEnd <= 0 {
		yearEnd = year
	}
	return FiscalYearBudget{Line: line, Year: year, YearEnd: yearEnd, Amount: amount}
}

func (f FiscalYearBudget) String() string {
	if f.Year != f.YearEnd {
		return fmt.Sprintf("%d - %d", f.Year, f.YearEnd)
	}
	return strconv.Itoa(f.Year)
}
