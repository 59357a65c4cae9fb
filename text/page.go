package text

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLineGroupTolerance is the vertical gap, in normalized page units,
// beyond which two words belong to different lines.
const DefaultLineGroupTolerance = 0.01

// Page is one page of positioned text together with the page-level context
// the extraction stages need: its index in the document, its dimensions,
// whether a ruled table was detected on it, and the document identifier.
type Page struct {
	Lines         []*Line
	Index         int
	Width, Height float64
	ContainsTable bool
	Document      string
}

// NewPage assembles a page from its lines and sets each line's page
// back-reference.
func NewPage(lines []*Line, index int, width, height float64) (*Page, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("page %d has non-positive dimensions %gx%g", index, width, height)
	}
	p := &Page{
		Lines:  lines,
		Index:  index,
		Width:  width,
		Height: height,
	}
	for _, line := range lines {
		line.Page = p
	}
	return p, nil
}

// String renders the page's text, one line per row.
func (p *Page) String() string {
	parts := make([]string, len(p.Lines))
	for i, line := range p.Lines {
		parts[i] = line.String()
	}
	return strings.Join(parts, "\n")
}

// GroupWordsIntoLines splits positioned words into lines by vertical band:
// words are ordered top-to-bottom, a new line starts whenever the vertical
// step from the previous word exceeds the tolerance, and each line is then
// ordered left-to-right.
func GroupWordsIntoLines(words []Word, tolerance float64) [][]Word {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y0 != sorted[j].Y0 {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines [][]Word
	var current []Word
	prevY0 := sorted[0].Y0
	for _, word := range sorted {
		if word.Y0-prevY0 > tolerance {
			lines = append(lines, current)
			current = nil
		}
		current = append(current, word)
		prevY0 = word.Y0
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].X0 < line[j].X0
		})
	}

	return lines
}
