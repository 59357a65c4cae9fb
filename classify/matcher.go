package classify

// Matcher scores the similarity of two strings in [0, 1]. The classifier
// uses it to recognize boilerplate lines whose text was corrupted during
// extraction; swapping the implementation changes corruption tolerance
// without touching classification control flow.
type Matcher interface {
	Ratio(a, b string) float64
}

// SequenceMatcher is the default Matcher. It scores two strings as
// 2*M/T, where M is the total length of the recursively-found longest
// common blocks and T the combined length, the classic sequence-matcher
// ratio the classifier's thresholds were tuned against. Comparison is by
// rune, so Thai text scores by character rather than by byte.
type SequenceMatcher struct{}

// Ratio returns the similarity of a and b in [0, 1].
func (SequenceMatcher) Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra)+len(rb) == 0 {
		return 1
	}
	return 2 * float64(matchingRunes(ra, rb)) / float64(len(ra)+len(rb))
}

// matchingRunes counts the runes covered by matching blocks: the longest
// common block, plus matches recursively found to its left and right.
func matchingRunes(a, b []rune) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest block of runes common to a and b,
// preferring the earliest occurrence in a.
func longestMatch(a, b []rune) (bestA, bestB, bestSize int) {
	positions := make(map[rune][]int, len(b))
	for j, r := range b {
		positions[r] = append(positions[r], j)
	}

	// lengths[j] is the length of the common block ending at a[i-1], b[j].
	lengths := make(map[int]int)
	for i, r := range a {
		next := make(map[int]int)
		for _, j := range positions[r] {
			k := lengths[j-1] + 1
			next[j] = k
			if k > bestSize {
				bestA, bestB, bestSize = i-k+1, j-k+1, k
			}
		}
		lengths = next
	}
	return bestA, bestB, bestSize
}
