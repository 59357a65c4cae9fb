// Package classify groups the ordered text lines of a budget document into
// typed entries: budget-plan headers, project/output section headers,
// numbered budget items, and fiscal-year allocation lines.
//
// The classifier is a single forward scan. An entry opens when a line
// carries a numbered-bullet prefix or a section-header word, accumulates
// continuation lines, and closes when a line ends with the currency unit.
// Recognition of known headings tolerates extraction corruption through a
// pluggable similarity Matcher.
package classify
