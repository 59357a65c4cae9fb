package tables

import (
	"fmt"
	"math"
	"sort"

	"thbudget/model"
)

// Table is one ruled-table region: the segments that form it, their
// bounding rectangle, the distinct horizontal and vertical support-line
// positions, and the grid of cells those supports delimit.
type Table struct {
	Segments    []model.Rect
	Bounds      model.Rect
	Horizontals []float64
	Verticals   []float64
	Cells       []*Cell
}

// Cell is one rectangular grid region of a table. Words assigned to the
// cell are kept in insertion order.
type Cell struct {
	Row, Col int
	Bounds   model.Rect
	Words    []string
}

func newTable(segments []model.Rect, supportTolerance float64) *Table {
	t := &Table{Segments: segments}
	if len(segments) == 0 {
		return t
	}

	t.Bounds = segments[0]
	for _, seg := range segments[1:] {
		t.Bounds = t.Bounds.Union(seg)
	}

	t.Horizontals = supportPositions(segments, supportTolerance, func(r model.Rect) (float64, bool) {
		return r.Y0, r.IsHorizontal()
	})
	t.Verticals = supportPositions(segments, supportTolerance, func(r model.Rect) (float64, bool) {
		return r.X0, r.IsVertical()
	})

	t.buildCells(supportTolerance)
	return t
}

// supportPositions collects the distinct coordinate of every wide (or tall)
// segment, merging positions that fall within the tolerance of one already
// collected.
func supportPositions(segments []model.Rect, tolerance float64, key func(model.Rect) (float64, bool)) []float64 {
	var positions []float64
	for _, seg := range segments {
		pos, ok := key(seg)
		if !ok {
			continue
		}
		merged := false
		for _, existing := range positions {
			if math.Abs(pos-existing) < tolerance {
				merged = true
				break
			}
		}
		if !merged {
			positions = append(positions, pos)
		}
	}
	return positions
}

// buildCells forms the cell grid from consecutive support-line pairs. The
// table's own top and left bounding edges are injected as implicit supports
// when no real segment lies within the tolerance of them.
func (t *Table) buildCells(tolerance float64) {
	horizontals := append([]float64(nil), t.Horizontals...)
	if !hasSupportNear(horizontals, t.Bounds.Y0, tolerance) {
		horizontals = append([]float64{t.Bounds.Y0}, horizontals...)
	}
	verticals := append([]float64(nil), t.Verticals...)
	if !hasSupportNear(verticals, t.Bounds.X0, tolerance) {
		verticals = append([]float64{t.Bounds.X0}, verticals...)
	}

	sort.Float64s(horizontals)
	sort.Float64s(verticals)

	for i := 0; i < len(horizontals)-1; i++ {
		for j := 0; j < len(verticals)-1; j++ {
			t.Cells = append(t.Cells, &Cell{
				Row: i,
				Col: j,
				Bounds: model.NewRect(
					verticals[j], horizontals[i],
					verticals[j+1], horizontals[i+1],
				),
			})
		}
	}
}

func hasSupportNear(positions []float64, edge, tolerance float64) bool {
	for _, pos := range positions {
		if math.Abs(edge-pos) <= tolerance {
			return true
		}
	}
	return false
}

// AddWord assigns a word to the cell containing its center. A word whose
// center falls in no cell is an error; the word is dropped, not misfiled.
func (t *Table) AddWord(word string, bounds model.Rect) error {
	center := bounds.Center()
	for _, cell := range t.Cells {
		if cell.Bounds.ContainsPoint(center) {
			cell.Words = append(cell.Words, word)
			return nil
		}
	}
	return fmt.Errorf("word %q at (%g, %g) is not contained in any table cell", word, center.X, center.Y)
}

// CellAt returns the cell at the given grid position, or nil.
func (t *Table) CellAt(row, col int) *Cell {
	for _, cell := range t.Cells {
		if cell.Row == row && cell.Col == col {
			return cell
		}
	}
	return nil
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(horz=%d, vert=%d)", len(t.Horizontals), len(t.Verticals))
}
