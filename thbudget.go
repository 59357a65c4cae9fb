// Package thbudget provides a fluent API for extracting hierarchical
// budget trees from Thai government budget documents.
//
// Basic usage:
//
//	root, err := thbudget.Open("red.0301.pdf").Tree()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	root, err := thbudget.Open("red.0301.pdf").
//	    PageRange(32, 41).
//	    KeepSingletonRoot().
//	    Tree()
//
// For advanced use cases the lower-level reader, classify and tree
// packages are also available.
package thbudget

import (
	"fmt"
	"path/filepath"

	"thbudget/classify"
	"thbudget/format"
	"thbudget/model"
	"thbudget/reader"
	"thbudget/text"
	"thbudget/tree"
)

// Extraction carries the source document and options through fluent
// configuration. Terminal operations (Tree, Entries) run the extraction.
type Extraction struct {
	filename string
	document *text.Document
	options  ExtractOptions
}

// Open prepares an extraction from a budget document file, either a PDF
// or an .xlsx workbook export. The file is read when a terminal operation
// runs.
//
// Example:
//
//	root, err := thbudget.Open("red.0301.pdf").Tree()
func Open(filename string) *Extraction {
	return &Extraction{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument prepares an extraction from an already-loaded positioned
// text document, for example one read with reader.ReadDocumentJSON.
func FromDocument(doc *text.Document) *Extraction {
	return &Extraction{
		document: doc,
		options:  defaultOptions(),
	}
}

// Must panics when err is non-nil, for scripts and tests where error
// handling would be cumbersome.
//
// Example:
//
//	root := thbudget.Must(thbudget.Open("red.0301.pdf").Tree())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func (e *Extraction) clone() *Extraction {
	return &Extraction{
		filename: e.filename,
		document: e.document,
		options:  e.options.clone(),
	}
}

// PageRange restricts extraction to pages [start, end), zero-indexed. A
// negative bound means the document's own bound.
func (e *Extraction) PageRange(start, end int) *Extraction {
	next := e.clone()
	next.options.startPage = start
	next.options.endPage = end
	return next
}

// KeepSingletonRoot keeps the synthetic ROOT node even when the extraction
// yields a single top-level node under it. By default such a root is
// collapsed to its only child.
func (e *Extraction) KeepSingletonRoot() *Extraction {
	next := e.clone()
	next.options.collapseRoot = false
	return next
}

// WithReader sets the PDF reading configuration.
func (e *Extraction) WithReader(config reader.Config) *Extraction {
	next := e.clone()
	next.options.reader = config
	return next
}

// WithClassifier sets the entry classification configuration.
func (e *Extraction) WithClassifier(config classify.Config) *Extraction {
	next := e.clone()
	next.options.classifier = config
	return next
}

// IndentTolerance sets the horizontal tolerance used when deriving nesting
// levels from indentation.
func (e *Extraction) IndentTolerance(tolerance float64) *Extraction {
	next := e.clone()
	next.options.indentTolerance = tolerance
	return next
}

// Entries runs extraction up to classification and level assignment and
// returns the leveled entries in document order.
func (e *Extraction) Entries() ([]*classify.Entry, error) {
	doc, err := e.load()
	if err != nil {
		return nil, err
	}
	lines, err := doc.LinesInRange(e.options.startPage, e.options.endPage)
	if err != nil {
		return nil, err
	}

	entries := classify.NewClassifier(e.options.classifier).Classify(lines)
	tree.AssignLevels(entries, e.options.indentTolerance)
	return entries, nil
}

// Tree runs the full extraction and returns the budget tree.
func (e *Extraction) Tree() (*model.BudgetItem, error) {
	doc, err := e.load()
	if err != nil {
		return nil, err
	}
	entries, err := e.Entries()
	if err != nil {
		return nil, err
	}

	root := tree.Build(entries, doc.ID)
	if e.options.collapseRoot && len(root.Children) == 1 {
		return root.Children[0], nil
	}
	return root, nil
}

// load resolves the source document, reading the source file when the
// extraction was opened from a file name. Workbook exports are recognized
// by their extension; everything else is read as PDF.
func (e *Extraction) load() (*text.Document, error) {
	if e.document != nil {
		return e.document, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no document source")
	}

	var doc *text.Document
	var err error
	if format.Detect(e.filename) == format.XLSX {
		doc, err = reader.ReadWorkbook(e.filename, filepath.Base(e.filename))
	} else {
		doc, err = reader.NewPDF(e.options.reader).ReadDocument(e.filename, filepath.Base(e.filename))
	}
	if err != nil {
		return nil, err
	}
	e.document = doc
	return doc, nil
}
