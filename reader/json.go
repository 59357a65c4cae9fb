package reader

import (
	"encoding/json"
	"fmt"
	"io"

	"thbudget/text"
)

// Page-dump wire format. A dump carries one document's positioned text the
// way an external extractor produced it, so extraction stages can run
// without the source PDF.
type documentDump struct {
	DocID string     `json:"doc_id"`
	Pages []pageDump `json:"pages"`
}

type pageDump struct {
	PageIndex     int          `json:"page_index"`
	Width         float64      `json:"width"`
	Height        float64      `json:"height"`
	ContainsTable bool         `json:"contains_table"`
	Lines         [][]wordDump `json:"lines"`
}

type wordDump struct {
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Text string  `json:"text"`
}

// ReadDocumentJSON reads a positioned-text document from its JSON page
// dump.
func ReadDocumentJSON(r io.Reader) (*text.Document, error) {
	var dump documentDump
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dump); err != nil {
		return nil, fmt.Errorf("decode page dump: %w", err)
	}

	doc := text.NewDocument(dump.DocID)
	for i, pd := range dump.Pages {
		lines := make([]*text.Line, 0, len(pd.Lines))
		for li, wd := range pd.Lines {
			words := make([]text.Word, 0, len(wd))
			for _, w := range wd {
				words = append(words, text.NewWord(w.X0, w.Y0, w.X1, w.Y1, w.Text))
			}
			lines = append(lines, text.NewLine(words, pd.PageIndex, li))
		}

		page, err := text.NewPage(lines, pd.PageIndex, pd.Width, pd.Height)
		if err != nil {
			return nil, fmt.Errorf("page dump entry %d: %w", i, err)
		}
		page.ContainsTable = pd.ContainsTable
		doc.AddPage(page)
	}
	return doc, nil
}

// WriteDocumentJSON writes a document's page dump, the inverse of
// ReadDocumentJSON.
func WriteDocumentJSON(w io.Writer, doc *text.Document) error {
	dump := documentDump{DocID: doc.ID, Pages: make([]pageDump, 0, len(doc.Pages))}
	for _, page := range doc.Pages {
		pd := pageDump{
			PageIndex:     page.Index,
			Width:         page.Width,
			Height:        page.Height,
			ContainsTable: page.ContainsTable,
			Lines:         make([][]wordDump, 0, len(page.Lines)),
		}
		for _, line := range page.Lines {
			words := make([]wordDump, 0, len(line.Words))
			for _, word := range line.Words {
				words = append(words, wordDump{
					X0: word.X0, Y0: word.Y0, X1: word.X1, Y1: word.Y1,
					Text: word.Text,
				})
			}
			pd.Lines = append(pd.Lines, words)
		}
		dump.Pages = append(dump.Pages, pd)
	}

	enc := json.NewEncoder(w)
	return enc.Encode(dump)
}
