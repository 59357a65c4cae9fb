// Package tree turns classified entries into a budget tree: it assigns
// nesting levels from corrected indentation, parses amounts and fiscal-year
// ranges out of entry text, and assembles the nodes under a synthetic root.
package tree
