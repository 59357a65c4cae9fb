package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thbudget/text"
)

func textPage(t *testing.T, index int, texts ...string) *text.Page {
	t.Helper()
	var lines []*text.Line
	for i, s := range texts {
		y := float64(i) * 0.05
		word := text.NewWord(0.1, y, 0.9, y+0.02, s)
		lines = append(lines, text.NewLine([]text.Word{word}, index, i))
	}
	page, err := text.NewPage(lines, index, 1, 1)
	require.NoError(t, err)
	return page
}

func documentOf(pages ...*text.Page) *text.Document {
	doc := text.NewDocument("test.pdf")
	for _, page := range pages {
		doc.AddPage(page)
	}
	return doc
}

func TestContentRangeFindsSection(t *testing.T) {
	doc := documentOf(
		textPage(t, 0, "งบประมาณรายจ่ายประจำปี"),
		textPage(t, 1, "7. รายละเอียดงบประมาณจำแนกตามแผนงาน และ ผลผลิต/โครงการ"),
		textPage(t, 2, "7.1 แผนงานพื้นฐานด้านการพัฒนา 9,500,000 บาท"),
		textPage(t, 3, "8. รายงานสถานะและแผนการใช้จ่ายเงินนอกงบประมาณ"),
	)

	start, end, err := contentRange(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)
}

func TestContentRangeLastEndBannerWins(t *testing.T) {
	doc := documentOf(
		textPage(t, 0, "1. รายละเอียดงบประมาณจำแนกตามแผนงาน และ ผลผลิต/โครงการ"),
		textPage(t, 1, "8. รายละเอียดงบประมาณจำแนกตามหมวดรายจ่าย"),
		textPage(t, 2, "รายละเอียดงบประมาณจำแนกตามงบรายจ่าย"),
		textPage(t, 3, "8. รายงานสถานะและแผนการใช้จ่ายเงินนอกงบประมาณ"),
	)

	start, end, err := contentRange(doc)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestContentRangeWithoutEndRunsToLastPage(t *testing.T) {
	doc := documentOf(
		textPage(t, 0, "รายละเอียดงบประมาณจำแนกตามงบรายจ่าย"),
		textPage(t, 1, "1. งบบุคลากร 1,000 บาท"),
	)

	start, end, err := contentRange(doc)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestContentRangeWithoutStartFails(t *testing.T) {
	doc := documentOf(textPage(t, 0, "งบประมาณรายจ่ายประจำปี"))

	_, _, err := contentRange(doc)
	assert.Error(t, err)
}

func TestContentRangeIgnoresSpacingDifferences(t *testing.T) {
	// Extracted text often fuses or splits words around the banner.
	doc := documentOf(
		textPage(t, 0, "7.รายละเอียดงบประมาณจำแนกตามแผนงานและผลผลิต/โครงการ"),
	)

	start, end, err := contentRange(doc)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)
}

func TestIsBudgetDocument(t *testing.T) {
	assert.True(t, isBudgetDocument("red.0301.pdf"))
	assert.True(t, isBudgetDocument("กระทรวงศึกษาธิการ.xlsx"))
	assert.True(t, isBudgetDocument("UPPER.XLSX"))
	assert.False(t, isBudgetDocument("~$กระทรวงศึกษาธิการ.xlsx"))
	assert.False(t, isBudgetDocument("notes.txt"))
	assert.False(t, isBudgetDocument("red.0301.json"))
}

func TestCollectDocumentsWalksDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"a.pdf", "~$lock.xlsx", "notes.txt", filepath.Join("sub", "b.xlsx")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := collectDocuments(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "sub", "b.xlsx"),
	}, files)
}

func TestCollectDocumentsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	files, err := collectDocuments(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}
