package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"thbudget/model"
)

// danglingMarks are Thai vowel and tone marks that can only follow a base
// consonant. A word starting with one of these was split off its base word
// by the upstream text extraction and must be merged back.
var danglingMarks = []string{"า", "ำ", "ํา", "่", "้", "๊", "๋"}

// Word is one positioned word on a page. Coordinates are normalized to
// [0, 1] of the page dimensions, with the origin at the top-left corner.
type Word struct {
	X0, Y0, X1, Y1 float64
	Text           string
}

// NewWord creates a word, normalizing the text to NFC so that mark
// detection and later pattern matching see canonical codepoints.
func NewWord(x0, y0, x1, y1 float64, s string) Word {
	return Word{X0: x0, Y0: y0, X1: x1, Y1: y1, Text: norm.NFC.String(s)}
}

// Bounds returns the word's bounding rectangle.
func (w Word) Bounds() model.Rect {
	return model.NewRect(w.X0, w.Y0, w.X1, w.Y1)
}

// StartsWithDanglingMark reports whether the word begins with a combining
// mark that cannot start a word.
func (w Word) StartsWithDanglingMark() bool {
	for _, mark := range danglingMarks {
		if strings.HasPrefix(w.Text, mark) {
			return true
		}
	}
	return false
}

// fixSplitText repairs the common extraction artifact where สระอำ is split
// into its spacing part: a leading า on a split-off word is actually ำ.
func (w Word) fixSplitText() string {
	if strings.HasPrefix(w.Text, "า") {
		return "ำ" + strings.TrimPrefix(w.Text, "า")
	}
	return w.Text
}

// merge absorbs a split-off continuation word: the text is appended in its
// repaired form and the bounding box expanded to cover both words.
func (w *Word) merge(other Word) {
	w.Text += other.fixSplitText()
	if other.X0 < w.X0 {
		w.X0 = other.X0
	}
	if other.Y0 < w.Y0 {
		w.Y0 = other.Y0
	}
	if other.X1 > w.X1 {
		w.X1 = other.X1
	}
	if other.Y1 > w.Y1 {
		w.Y1 = other.Y1
	}
}

func (w Word) String() string {
	return w.Text
}

// GoString helps when dumping extraction state during debugging.
func (w Word) GoString() string {
	return fmt.Sprintf("Word(%.2f, %.2f, %.2f, %.2f, %q)", w.X0, w.Y0, w.X1, w.Y1, w.Text)
}
