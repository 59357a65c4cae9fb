package tree

import (
	"github.com/sirupsen/logrus"

	"thbudget/classify"
)

var log = logrus.WithField("stage", "tree")

// DefaultIndentTolerance is the horizontal distance, in normalized page
// units, under which two entries count as equally indented.
const DefaultIndentTolerance = 0.005

// AssignLevels derives a nesting level for every entry from horizontal
// position, in place.
//
// Budget documents indent each nesting level a little further right, but
// the left margin drifts between pages. The right edge is stable, so each
// item's left edge is corrected by its page's right-edge offset from the
// widest page before comparison. A stack of indentation positions then
// tracks the open nesting levels: a shallower item pops back out, a new
// deeper indentation pushes, and the item's level is the stack depth.
//
// Plan and section headers reset the stack and take fixed levels above the
// item range: budget plans -2, projects and outputs -1. Fiscal-year entries
// are left unleveled.
func AssignLevels(entries []*classify.Entry, tolerance float64) {
	if tolerance <= 0 {
		tolerance = DefaultIndentTolerance
	}

	pageX1 := pageRightEdges(entries)
	var maxX1 float64
	for _, x1 := range pageX1 {
		if x1 > maxX1 {
			maxX1 = x1
		}
	}

	var stack []float64
	for _, entry := range entries {
		switch entry.Type {
		case classify.EntryBudgetPlan:
			stack = stack[:0]
			entry.SetLevel(-2)
			continue
		case classify.EntryProject, classify.EntryOutput:
			stack = stack[:0]
			entry.SetLevel(-1)
			continue
		case classify.EntryFiscalYear:
			continue
		}

		// Shift the left edge as if the entry sat on the widest page.
		x := entry.X0() + (maxX1 - pageX1[entry.PageIndex()])

		for len(stack) > 0 && stack[len(stack)-1] > x+tolerance {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 || abs(stack[len(stack)-1]-x) >= tolerance {
			stack = append(stack, x)
		}
		entry.SetLevel(len(stack))

		log.Debugf("level %d for %q (x=%f)", entry.Level, entry.Text(), x)
	}
}

// pageRightEdges maps each page index to the maximum right edge over the
// entries on that page.
func pageRightEdges(entries []*classify.Entry) map[int]float64 {
	edges := make(map[int]float64)
	for _, entry := range entries {
		if entry.Type == classify.EntryFiscalYear {
			continue
		}
		page := entry.PageIndex()
		if x1 := entry.X1(); x1 > edges[page] {
			edges[page] = x1
		}
	}
	return edges
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
