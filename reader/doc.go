// Package reader acquires positioned text for the extraction stages. The
// PDF reader pulls glyph fragments and drawn segments out of budget PDFs,
// assembles them into normalized words and lines, and flags pages whose
// ruling segments form a table. The JSON reader loads the same structure
// from a previously written page dump.
package reader
