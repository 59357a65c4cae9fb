package tables

import (
	"testing"

	"thbudget/model"
)

// boxSegments returns the four thin rules outlining a rectangle.
func boxSegments(x0, y0, x1, y1 float64) []model.Rect {
	return []model.Rect{
		model.NewRect(x0, y0, x1, y0+1), // top
		model.NewRect(x0, y1-1, x1, y1), // bottom
		model.NewRect(x0, y0, x0+1, y1), // left
		model.NewRect(x1-1, y0, x1, y1), // right
	}
}

func TestDetectNoSegments(t *testing.T) {
	d := NewDetector()
	if got := d.Detect(nil); got != nil {
		t.Errorf("expected no tables, got %d", len(got))
	}
	if d.ContainsTable(nil) {
		t.Error("empty page must not contain a table")
	}
}

func TestDetectSingleBox(t *testing.T) {
	d := NewDetector()
	tabs := d.Detect(boxSegments(0, 0, 100, 100))
	if len(tabs) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tabs))
	}
	b := tabs[0].Bounds
	if b.X0 != 0 || b.Y0 != 0 || b.X1 != 100 || b.Y1 != 100 {
		t.Errorf("unexpected table bounds %+v", b)
	}
}

func TestDetectTwoDisjointBoxes(t *testing.T) {
	segments := append(boxSegments(0, 0, 100, 100), boxSegments(300, 0, 400, 100)...)

	d := NewDetector()
	tabs := d.Detect(segments)
	if len(tabs) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tabs))
	}
}

func TestDetectIgnoresIsolatedStroke(t *testing.T) {
	d := NewDetector()
	tabs := d.Detect([]model.Rect{model.NewRect(0, 50, 100, 51)})
	if len(tabs) != 0 {
		t.Errorf("a lone stroke is not a table, got %d tables", len(tabs))
	}
}

func TestDetectNestedBoxAbsorbed(t *testing.T) {
	// An inner box drawn fully inside an outer one must not yield a second
	// table region.
	segments := append(boxSegments(0, 0, 100, 100), boxSegments(20, 20, 80, 80)...)

	d := NewDetector()
	tabs := d.Detect(segments)
	if len(tabs) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tabs))
	}
	if tabs[0].Bounds.X1 != 100 {
		t.Errorf("outer region must win, got bounds %+v", tabs[0].Bounds)
	}
}

func TestIsOnSegment(t *testing.T) {
	a := model.Point{X: 0, Y: 0}
	b := model.Point{X: 100, Y: 0}

	tests := []struct {
		name string
		p    model.Point
		want bool
	}{
		{"on the segment", model.Point{X: 50, Y: 0}, true},
		{"within tolerance", model.Point{X: 50, Y: 5}, true},
		{"too far off", model.Point{X: 50, Y: 50}, false},
		{"on infinite extension", model.Point{X: 150, Y: 0}, false},
		{"endpoint", model.Point{X: 0, Y: 0}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isOnSegment(tc.p, a, b, 10); got != tc.want {
				t.Errorf("isOnSegment(%+v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestIsOnSegmentDegenerate(t *testing.T) {
	p := model.Point{X: 0, Y: 0}
	if isOnSegment(p, p, p, 10) {
		t.Error("a zero-length segment connects to nothing")
	}
}

func TestTableGrid(t *testing.T) {
	segments := boxSegments(0, 0, 100, 100)
	segments = append(segments,
		model.NewRect(0, 49.5, 100, 50.5), // middle horizontal
		model.NewRect(49.5, 0, 50.5, 100), // middle vertical
	)

	d := NewDetector()
	tabs := d.Detect(segments)
	if len(tabs) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tabs))
	}

	tab := tabs[0]
	if len(tab.Horizontals) != 3 {
		t.Errorf("expected 3 horizontal supports, got %d (%v)", len(tab.Horizontals), tab.Horizontals)
	}
	if len(tab.Verticals) != 3 {
		t.Errorf("expected 3 vertical supports, got %d (%v)", len(tab.Verticals), tab.Verticals)
	}
	if len(tab.Cells) != 4 {
		t.Fatalf("expected a 2x2 cell grid, got %d cells", len(tab.Cells))
	}

	cell := tab.CellAt(0, 0)
	if cell == nil {
		t.Fatal("missing cell (0,0)")
	}
	if cell.Bounds.X1 != 49.5 || cell.Bounds.Y1 != 49.5 {
		t.Errorf("unexpected cell bounds %+v", cell.Bounds)
	}
}

func TestTableSupportMerging(t *testing.T) {
	segments := boxSegments(0, 0, 100, 100)
	// A second rule within the merge tolerance of the top rule must not
	// create an extra support line.
	segments = append(segments, model.NewRect(0, 3, 100, 4))

	d := NewDetector()
	tabs := d.Detect(segments)
	if len(tabs) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tabs))
	}
	if len(tabs[0].Horizontals) != 2 {
		t.Errorf("near-duplicate supports must merge, got %v", tabs[0].Horizontals)
	}
}

func TestAddWord(t *testing.T) {
	segments := boxSegments(0, 0, 100, 100)
	segments = append(segments,
		model.NewRect(0, 49.5, 100, 50.5),
		model.NewRect(49.5, 0, 50.5, 100),
	)

	d := NewDetector()
	tab := d.Detect(segments)[0]

	if err := tab.AddWord("งบ", model.NewRect(10, 10, 30, 20)); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	cell := tab.CellAt(0, 0)
	if len(cell.Words) != 1 || cell.Words[0] != "งบ" {
		t.Errorf("word not assigned to cell (0,0): %v", cell.Words)
	}

	if err := tab.AddWord("away", model.NewRect(500, 500, 510, 510)); err == nil {
		t.Error("a word outside every cell must be an error")
	}
}
