package thbudget

import (
	"thbudget/classify"
	"thbudget/reader"
	"thbudget/tree"
)

// ExtractOptions holds configuration for budget-tree extraction.
type ExtractOptions struct {
	// Page selection, [startPage, endPage) with negatives meaning the
	// document's own bounds.
	startPage int
	endPage   int

	// Stage configuration.
	reader     reader.Config
	classifier classify.Config

	// Indentation tolerance for level assignment.
	indentTolerance float64

	// collapseRoot drops the synthetic ROOT when it has exactly one
	// child.
	collapseRoot bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		startPage:       -1,
		endPage:         -1,
		reader:          reader.DefaultConfig(),
		classifier:      classify.DefaultConfig(),
		indentTolerance: tree.DefaultIndentTolerance,
		collapseRoot:    true,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
