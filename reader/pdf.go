package reader

import (
	"fmt"
	"math"
	"sort"

	pdflib "github.com/ledongthuc/pdf"

	"thbudget/model"
	"thbudget/tables"
	"thbudget/text"
)

// Config holds PDF reading configuration.
type Config struct {
	// LineGroupTolerance is the vertical gap, in normalized page units,
	// under which two words share a text line.
	LineGroupTolerance float64

	// Tables configures ruled-table detection on each page's drawn
	// segments. Its tolerances are in PDF points: detection runs on the
	// raw drawing coordinates, before normalization.
	Tables tables.Config
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		LineGroupTolerance: text.DefaultLineGroupTolerance,
		Tables:             tables.DefaultConfig(),
	}
}

// PDF reads budget documents from PDF files. All text geometry is
// normalized to [0, 1] page units with a top-left origin before it leaves
// this package.
type PDF struct {
	config   Config
	detector *tables.Detector
}

// NewPDF creates a PDF reader with the given configuration.
func NewPDF(config Config) *PDF {
	detector := tables.NewDetector()
	detector.Configure(config.Tables)
	return &PDF{config: config, detector: detector}
}

// ReadDocument reads the PDF at path into a positioned-text document. The
// document ID is the given identifier, conventionally the file name. Each
// page carries its grouped text lines and a table flag derived from the
// page's drawn segments.
func (p *PDF) ReadDocument(path, docID string) (*text.Document, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	doc := text.NewDocument(docID)
	for i := 1; i <= r.NumPage(); i++ {
		libPage := r.Page(i)
		if libPage.V.IsNull() {
			continue
		}
		page, err := p.readPage(libPage, i-1)
		if err != nil {
			return nil, fmt.Errorf("read page %d of %s: %w", i, path, err)
		}
		doc.AddPage(page)
	}
	return doc, nil
}

func (p *PDF) readPage(libPage pdflib.Page, index int) (*text.Page, error) {
	width, height, err := pageSize(libPage)
	if err != nil {
		return nil, err
	}

	content := libPage.Content()
	words := assembleWords(content.Text, width, height)

	var lines []*text.Line
	for i, group := range text.GroupWordsIntoLines(words, p.config.LineGroupTolerance) {
		lines = append(lines, text.NewLine(group, index, i))
	}

	page, err := text.NewPage(lines, index, 1, 1)
	if err != nil {
		return nil, err
	}
	page.ContainsTable = p.detector.ContainsTable(segmentRects(content.Rect))
	return page, nil
}

// pageSize reads the media box, walking up the page tree for an inherited
// one.
func pageSize(libPage pdflib.Page) (width, height float64, err error) {
	v := libPage.V
	for i := 0; i < 16 && !v.IsNull(); i++ {
		if box := v.Key("MediaBox"); !box.IsNull() {
			width = box.Index(2).Float64() - box.Index(0).Float64()
			height = box.Index(3).Float64() - box.Index(1).Float64()
			if width <= 0 || height <= 0 {
				return 0, 0, fmt.Errorf("degenerate media box %gx%g", width, height)
			}
			return width, height, nil
		}
		v = v.Key("Parent")
	}
	return 0, 0, fmt.Errorf("no media box")
}

// wordGapFactor scales a fragment's font size into the maximum horizontal
// gap that still joins it to the previous fragment of the same word.
const wordGapFactor = 0.3

// assembleWords joins glyph-level text fragments into words, normalized to
// [0, 1] top-left page units. Fragments are read in baseline bands; within
// a band a fragment extends the current word unless it is whitespace or a
// gap wider than a fraction of the font size separates it.
func assembleWords(fragments []pdflib.Text, width, height float64) []text.Word {
	sorted := make([]pdflib.Text, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			// PDF y grows upward; higher baselines read first.
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var words []text.Word
	var run []pdflib.Text
	flush := func() {
		if w, ok := wordFromRun(run, width, height); ok {
			words = append(words, w)
		}
		run = run[:0]
	}

	for _, fragment := range sorted {
		if isWhitespace(fragment.S) {
			flush()
			continue
		}
		if len(run) > 0 {
			prev := run[len(run)-1]
			sameBand := math.Abs(prev.Y-fragment.Y) < 1e-6
			gap := fragment.X - (prev.X + prev.W)
			if !sameBand || gap > wordGapFactor*fragment.FontSize {
				flush()
			}
		}
		run = append(run, fragment)
	}
	flush()
	return words
}

func wordFromRun(run []pdflib.Text, width, height float64) (text.Word, bool) {
	if len(run) == 0 {
		return text.Word{}, false
	}
	var s string
	x0, x1 := run[0].X, run[0].X+run[0].W
	top, fontSize := run[0].Y, run[0].FontSize
	for _, fragment := range run {
		s += fragment.S
		if fragment.X < x0 {
			x0 = fragment.X
		}
		if right := fragment.X + fragment.W; right > x1 {
			x1 = right
		}
		if fragment.FontSize > fontSize {
			fontSize = fragment.FontSize
		}
	}
	// The baseline plus the font size approximates the glyph box.
	return text.NewWord(
		x0/width,
		1-(top+fontSize)/height,
		x1/width,
		1-top/height,
		s,
	), true
}

func isWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', ' ':
		default:
			return false
		}
	}
	return true
}

// segmentRects converts drawn rectangles to detection segments, kept in
// raw point coordinates to match the detector's tolerances.
func segmentRects(rects []pdflib.Rect) []model.Rect {
	out := make([]model.Rect, 0, len(rects))
	for _, r := range rects {
		out = append(out, model.Rect{
			X0: r.Min.X,
			Y0: r.Min.Y,
			X1: r.Max.X,
			Y1: r.Max.Y,
		})
	}
	return out
}
