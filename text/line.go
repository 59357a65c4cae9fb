package text

import "strings"

// Line is an ordered run of words sharing a vertical band on one page.
// Aggregate coordinates follow the first and last word. The page
// back-reference is set when the page is assembled and gives classifiers
// access to page-level context (table presence, document identifier).
type Line struct {
	Words     []Word
	PageIndex int
	LineIndex int
	Page      *Page
}

// NewLine builds a line from ordered words, merging words that start with a
// dangling combining mark back into their preceding word.
func NewLine(words []Word, pageIndex, lineIndex int) *Line {
	return &Line{
		Words:     joinSplitWords(words),
		PageIndex: pageIndex,
		LineIndex: lineIndex,
	}
}

// joinSplitWords repairs diacritic splits: a word that starts with a mark
// which cannot begin a word belongs to the word before it.
func joinSplitWords(words []Word) []Word {
	joined := make([]Word, 0, len(words))
	for _, word := range words {
		if word.StartsWithDanglingMark() && len(joined) > 0 {
			joined[len(joined)-1].merge(word)
			continue
		}
		joined = append(joined, word)
	}
	return joined
}

// X0 returns the left edge of the line (first word).
func (l *Line) X0() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[0].X0
}

// Y0 returns the top edge of the line (first word).
func (l *Line) Y0() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[0].Y0
}

// X1 returns the right edge of the line (last word).
func (l *Line) X1() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[len(l.Words)-1].X1
}

// Y1 returns the bottom edge of the line (last word).
func (l *Line) Y1() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	return l.Words[len(l.Words)-1].Y1
}

// String joins the line's words with single spaces.
func (l *Line) String() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}
