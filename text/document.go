package text

import "fmt"

// Document is an ordered collection of pages from one source file. The ID
// identifies the source document and is copied onto every page.
type Document struct {
	ID    string
	Pages []*Page
}

// NewDocument creates an empty document with the given identifier.
func NewDocument(id string) *Document {
	return &Document{ID: id}
}

// AddPage appends a page and stamps it with the document identifier.
func (d *Document) AddPage(p *Page) {
	p.Document = d.ID
	d.Pages = append(d.Pages, p)
}

// Lines returns all lines of the document in page order.
func (d *Document) Lines() []*Line {
	var lines []*Line
	for _, page := range d.Pages {
		lines = append(lines, page.Lines...)
	}
	return lines
}

// LinesInRange returns the lines of pages [start, end). Negative start
// means the first page; negative end means one past the last page.
func (d *Document) LinesInRange(start, end int) ([]*Line, error) {
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = len(d.Pages)
	}
	if start > len(d.Pages) {
		return nil, fmt.Errorf("start page %d out of range [0, %d]", start, len(d.Pages))
	}
	if end > len(d.Pages) {
		return nil, fmt.Errorf("end page %d out of range [0, %d]", end, len(d.Pages))
	}
	if end < start {
		return nil, fmt.Errorf("end page %d before start page %d", end, start)
	}

	var lines []*Line
	for _, page := range d.Pages[start:end] {
		lines = append(lines, page.Lines...)
	}
	return lines, nil
}
