// Package format detects the source format of budget document files.
package format

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported budget document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a published budget volume.
	PDF
	// XLSX indicates a draft-bill workbook export.
	XLSX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case XLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case XLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// Detect determines file format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".xlsx":
		return XLSX
	default:
		return Unknown
	}
}

// DetectFile inspects file content to determine format. This is more
// reliable than extension-based detection: PDFs are recognized by their
// magic bytes and workbooks by the xl/ directory inside the ZIP archive.
// Returns Unknown when the content matches neither.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	magic := make([]byte, 4)
	n, err := f.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if n < 4 {
		return Unknown, nil
	}

	// PDF magic: %PDF
	if magic[0] == '%' && magic[1] == 'P' && magic[2] == 'D' && magic[3] == 'F' {
		return PDF, nil
	}

	// ZIP magic: PK\x03\x04
	if magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(path)
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for the workbook directory.
func detectZIPFormat(path string) (Format, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Unknown, err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "xl/") {
			return XLSX, nil
		}
	}
	return Unknown, nil
}
