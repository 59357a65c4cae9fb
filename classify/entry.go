package classify

import (
	"strings"

	"thbudget/text"
)

// EntryType is the classification of an entry.
type EntryType string

const (
	// EntryBudgetPlan is a budget plan (แผนงาน) header detected on a
	// table page.
	EntryBudgetPlan EntryType = "budget_plan"
	// EntryProject is a project (โครงการ) section header.
	EntryProject EntryType = "PROJECT"
	// EntryOutput is an output (ผลผลิต) section header.
	EntryOutput EntryType = "OUTPUT"
	// EntryItem is a leaf budget-detail item.
	EntryItem EntryType = "item"
	// EntryFiscalYear is a committed multi-year allocation line.
	EntryFiscalYear EntryType = "fiscal_year"
)

// Entry is a typed grouping of one or more consecutive text lines. The
// level is assigned later by the level assigner; fiscal-year entries are
// never leveled.
type Entry struct {
	Type  EntryType
	Lines []*text.Line

	Level   int
	Leveled bool
}

// NewEntry groups lines into a typed entry. Every entry has at least one
// line; the zero-line case is a programming error upstream, so it is not
// defended here.
func NewEntry(entryType EntryType, lines []*text.Line) *Entry {
	return &Entry{Type: entryType, Lines: lines}
}

// SetLevel assigns the nesting level.
func (e *Entry) SetLevel(level int) {
	e.Level = level
	e.Leveled = true
}

// PageIndex is the page of the entry's first line.
func (e *Entry) PageIndex() int {
	return e.Lines[0].PageIndex
}

// X0 is the minimum left edge over the entry's lines.
func (e *Entry) X0() float64 {
	min := e.Lines[0].X0()
	for _, line := range e.Lines[1:] {
		if x := line.X0(); x < min {
			min = x
		}
	}
	return min
}

// X1 is the maximum right edge over the entry's lines.
func (e *Entry) X1() float64 {
	max := e.Lines[0].X1()
	for _, line := range e.Lines[1:] {
		if x := line.X1(); x > max {
			max = x
		}
	}
	return max
}

// Text joins the entry's lines with single spaces, trimmed.
func (e *Entry) Text() string {
	parts := make([]string, len(e.Lines))
	for i, line := range e.Lines {
		parts[i] = line.String()
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func (e *Entry) String() string {
	return e.Text()
}
