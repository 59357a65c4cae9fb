// Package text models positioned text as produced by an upstream provider:
// words with normalized per-page coordinates, grouped into lines, pages,
// and documents.
//
// The only mutation this package performs on provider output is the repair
// of diacritic splits at ingestion: Thai combining marks that the provider
// emitted as standalone words are merged back into the word before them
// (see [NewLine]). Everything downstream treats lines as read-only.
//
// [GroupWordsIntoLines] implements the provider-side contract of grouping
// raw words into vertical bands; providers that already deliver line
// structure can skip it.
package text
