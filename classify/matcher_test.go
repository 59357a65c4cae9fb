package classify

import "testing"

func TestSequenceMatcherRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "", 0},
		{"abc", "abc", 1},
		{"abcd", "bcde", 0.75},
		{"abcd", "efgh", 0},
		{"งบประมาณ", "งบประมาณ", 1},
	}
	m := SequenceMatcher{}
	for _, tc := range tests {
		if got := m.Ratio(tc.a, tc.b); got != tc.want {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSequenceMatcherDroppedRune(t *testing.T) {
	// One rune lost out of n scores 2(n-1)/(2n-1), which stays above the
	// 0.9 classification threshold for the headings it is applied to.
	a := "รายละเอียดงบประมาณจำแนกตามงบรายจ่าย"
	b := "รายละเอียดงบประมาณจำแนกตามงบรายจ่า"
	if got := (SequenceMatcher{}).Ratio(a, b); got < 0.9 {
		t.Errorf("Ratio = %v, want >= 0.9", got)
	}
}

func TestSequenceMatcherSplitBlocks(t *testing.T) {
	// Matching blocks on both sides of the longest block are counted.
	// Blocks "a", "by" and "c" match, 4 runes in total.
	got := (SequenceMatcher{}).Ratio("ax_by_cz", "aybycy")
	want := 2 * 4.0 / (8 + 6)
	if got != want {
		t.Errorf("Ratio = %v, want %v", got, want)
	}
}
