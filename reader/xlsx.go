package reader

import (
	"fmt"
	"regexp"
	"strings"

	"thbudget/text"
	"thbudget/xlsx"
)

// Budget workbooks are print layouts: each sheet is one page of the
// corresponding PDF. Sheets have no drawn ruling segments, so the
// plan-summary pages are recognized by their heading instead.
var planSummaryBanners = []string{
	"7. รายละเอียดงบประมาณจำแนกตามแผนงาน และ ผลผลิต/โครงการ",
	"1. รายละเอียดงบประมาณจำแนกตามแผนงาน และ ผลผลิต/โครงการ",
}

// spaceIndentWidth is the horizontal offset contributed by one leading
// space inside a cell, in normalized page units. Workbook exports encode
// indentation as leading spaces rather than cell position, so this must
// exceed the level assigner's tolerance.
const spaceIndentWidth = 0.01

var whitespacePattern = regexp.MustCompile(`\s+`)

// ContainsNormalized reports whether page text contains the banner after
// stripping all whitespace from both. Extraction splits banner text
// unpredictably, so comparison ignores spacing entirely.
func ContainsNormalized(pageText, banner string) bool {
	return strings.Contains(
		whitespacePattern.ReplaceAllString(pageText, ""),
		whitespacePattern.ReplaceAllString(banner, ""),
	)
}

// ReadWorkbook reads the XLSX workbook at path into a positioned-text
// document, one page per sheet. Cell geometry is synthesized from the
// sheet grid: columns map to horizontal position and leading spaces in a
// cell deepen its indentation.
func ReadWorkbook(path, docID string) (*text.Document, error) {
	r, err := xlsx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer r.Close()

	doc := text.NewDocument(docID)
	for _, sheet := range r.Sheets() {
		page, err := sheetPage(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
		doc.AddPage(page)
	}
	return doc, nil
}

func sheetPage(sheet *xlsx.Sheet) (*text.Page, error) {
	colWidth := 1.0 / float64(sheet.MaxCol+1)
	rowStep := 1.0 / float64(len(sheet.Rows)+1)

	var lines []*text.Line
	for rowIdx, row := range sheet.Rows {
		words := rowWords(row, rowIdx, colWidth, rowStep)
		if len(words) == 0 {
			continue
		}
		lines = append(lines, text.NewLine(words, sheet.Index, len(lines)))
	}

	page, err := text.NewPage(lines, sheet.Index, 1, 1)
	if err != nil {
		return nil, err
	}
	for _, banner := range planSummaryBanners {
		if ContainsNormalized(page.String(), banner) {
			page.ContainsTable = true
			break
		}
	}
	return page, nil
}

func rowWords(row []xlsx.Cell, rowIdx int, colWidth, rowStep float64) []text.Word {
	y0 := float64(rowIdx) * rowStep
	var words []text.Word
	for _, cell := range row {
		if cell.IsEmpty() || (cell.IsMerged && !cell.IsMergeRoot) {
			continue
		}
		value := strings.TrimRight(cell.Value, " ")
		trimmed := strings.TrimLeft(value, " ")
		if trimmed == "" {
			continue
		}
		indent := float64(len(value)-len(trimmed)) * spaceIndentWidth

		x0 := float64(cell.Col)*colWidth + indent
		x1 := float64(cell.Col+cell.MergeCols) * colWidth
		if x1 <= x0 {
			x1 = x0 + colWidth
		}
		words = append(words, text.NewWord(x0, y0, x1, y0+rowStep, trimmed))
	}
	return words
}
