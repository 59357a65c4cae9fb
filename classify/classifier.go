package classify

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"thbudget/text"
)

var log = logrus.WithField("stage", "classify")

// ContentBanner is the section header that opens the budget-detail part of
// a document. Line classification can be gated on (a possibly corrupted
// rendition of) this banner.
const ContentBanner = "รายละเอียดงบประมาณจำแนกตามงบรายจ่าย"

// currencyUnit closes an open entry when it ends a line.
const currencyUnit = "บาท"

// boilerplate are administrative heading tokens that never carry budget
// structure. Lines containing one of them (or a fuzzy-corrupted rendition)
// are dropped before classification.
var boilerplate = []string{
	ContentBanner,
	"รายละเอียดงบประมาณรายจ่ายจำแนกตามแผนงาน",
	"รายการบุคลากรภาครัฐ",
	"วงเงินทั้งสิ้น",
}

// allocationVerbs mark a committed-allocation line even when the year
// prefix was mangled by extraction.
var allocationVerbs = []string{
	"ตั้งงบประมาณ",
	"ผูกพันงบประมาณ",
}

// unitClassifierWords look like a bullet's payload but are unit-of-measure
// classifiers; a numeral followed by one of these is a quantity, not a
// list bullet.
var unitClassifierWords = []string{"แห่ง", "สายทาง"}

var (
	digitsOnlyPattern  = regexp.MustCompile(`^\d+$`)
	planNumberPattern  = regexp.MustCompile(`^7\.\d+$`)
	fiscalYearPattern  = regexp.MustCompile(`^ป?ี \d{4} `)
	totalCountPattern  = regexp.MustCompile(`^รวม \d+ รายการ`)
	extractionArtifact = "i ||| ."
	detailSkipLine     = "3. รายละเอียดงบประมาณ"
)

// bulletPatterns are the mutually exclusive numbered-prefix forms. The
// weight distinguishes forms from one another during recognition; dotted
// forms deepen by their dot count. Weights never set the final nesting
// level; that comes from horizontal position.
var bulletPatterns = []struct {
	re     *regexp.Regexp
	weight int
	dotted bool
}{
	{regexp.MustCompile(`^[1-9][0-9]*(\.[1-9][0-9]*)*\)$`), 20, true},
	{regexp.MustCompile(`^\(\d*(\.?\d*)*\)$`), 50, true},
	{regexp.MustCompile(`^[1-9][0-9]*(\.[1-9][0-9]*)+$`), 2, true},
	{regexp.MustCompile(`^[1-9][0-9]*\.$`), 1, false},
	{regexp.MustCompile(`^[1-9][0-9]*$`), 30, false},
}

// BulletWeight recognizes a numbered/bulleted first token and returns its
// pattern weight, or 0 when the token is not a bullet.
func BulletWeight(token string) int {
	for _, p := range bulletPatterns {
		if p.re.MatchString(token) {
			w := p.weight
			if p.dotted {
				w += strings.Count(token, ".")
			}
			return w
		}
	}
	return 0
}

// Config holds classifier configuration.
type Config struct {
	// Matcher scores corrupted-text similarity; nil means the default
	// sequence matcher.
	Matcher Matcher

	// FuzzyThreshold is the minimum similarity ratio for a line or token
	// to count as one of the known boilerplate strings.
	FuzzyThreshold float64

	// PlanOnTablePagesOnly scopes plan-header detection to pages with a
	// detected ruled table; on such pages every other line is skipped.
	PlanOnTablePagesOnly bool

	// RequireContentBanner gates classification: lines before a fuzzy
	// match of ContentBanner are ignored entirely.
	RequireContentBanner bool
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Matcher:              SequenceMatcher{},
		FuzzyThreshold:       0.9,
		PlanOnTablePagesOnly: true,
		RequireContentBanner: false,
	}
}

// state is the classifier's scan state.
type state int

const (
	// stateIdle: no entry is open; lines that match nothing are skipped.
	stateIdle state = iota
	// stateBullet: a numbered item is open and accumulating lines.
	stateBullet
	// stateSection: a project/output header is open and accumulating lines.
	stateSection
)

// Classifier groups ordered text lines into typed entries in a single
// forward pass. Classification of a line depends only on the line's text,
// its page's table flag, and the scan state built from earlier lines,
// never on later lines.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with the given configuration.
func NewClassifier(config Config) *Classifier {
	if config.Matcher == nil {
		config.Matcher = SequenceMatcher{}
	}
	return &Classifier{config: config}
}

// Classify scans the lines in order and returns the typed entries found,
// preserving document order. Lines matching no rule are logged and
// excluded; that is a diagnostic, not an error.
func (c *Classifier) Classify(lines []*text.Line) []*Entry {
	var entries []*Entry

	scanState := stateIdle
	sectionType := EntryProject
	var buffer []*text.Line
	contentStarted := !c.config.RequireContentBanner

	for _, line := range lines {
		lineText := strings.TrimSpace(line.String())

		if !contentStarted {
			if c.matchesBanner(lineText) {
				contentStarted = true
			}
			continue
		}

		if lineText == "" || lineText == extractionArtifact || lineText == detailSkipLine {
			continue
		}
		if digitsOnlyPattern.MatchString(lineText) {
			// Page numbers.
			continue
		}

		tokens := strings.Fields(lineText)
		if c.isBoilerplate(tokens) {
			continue
		}

		if line.Page != nil && line.Page.ContainsTable {
			if isPlanHeader(tokens) {
				entries = append(entries, NewEntry(EntryBudgetPlan, []*text.Line{line}))
				continue
			}
			if c.config.PlanOnTablePagesOnly {
				continue
			}
		}

		if c.isFiscalYearLine(lineText, tokens) {
			entries = append(entries, NewEntry(EntryFiscalYear, []*text.Line{line}))
			log.Debugf("%q is a fiscal-year line", lineText)
			continue
		}

		if scanState != stateBullet && totalCountPattern.MatchString(lineText) {
			// A "total N items" utterance continues the previous entry.
			if n := len(entries); n > 0 {
				prev := entries[n-1]
				prev.Lines = append(prev.Lines, line)
			}
			continue
		}

		if BulletWeight(tokens[0]) > 0 &&
			len(tokens) > 1 && !isUnitClassifier(tokens[1]) {
			scanState = stateBullet
			log.Debugf("%q opens a bullet", lineText)
		}

		if scanState != stateBullet {
			if t, ok := sectionHeaderType(tokens); ok {
				scanState = stateSection
				sectionType = t
				log.Debugf("%q opens a %s section", lineText, t)
			}
		}

		if scanState == stateIdle {
			if strings.HasPrefix(tokens[0], "เงินนอกงบประมาณ") {
				// Extra-budgetary funds aside; intentionally silent.
				continue
			}
			log.Debugf("skipped page=%d line=%d: %s", line.PageIndex, line.LineIndex, lineText)
			continue
		}

		buffer = append(buffer, line)
		if closesEntry(tokens) {
			entryType := sectionType
			if scanState == stateBullet {
				entryType = EntryItem
			}
			entries = append(entries, NewEntry(entryType, buffer))
			scanState = stateIdle
			buffer = nil
		}
	}

	return entries
}

// matchesBanner compares a whitespace-stripped line against the content
// banner, tolerating extraction corruption.
func (c *Classifier) matchesBanner(lineText string) bool {
	stripped := strings.Join(strings.Fields(lineText), "")
	return c.config.Matcher.Ratio(stripped, ContentBanner) >= c.config.FuzzyThreshold
}

// isBoilerplate reports whether any token is (a corrupted rendition of) a
// known administrative heading.
func (c *Classifier) isBoilerplate(tokens []string) bool {
	for _, token := range tokens {
		for _, known := range boilerplate {
			if token == known {
				return true
			}
			if c.config.Matcher.Ratio(token, known) >= c.config.FuzzyThreshold {
				return true
			}
		}
	}
	return false
}

// isFiscalYearLine recognizes a committed-allocation line either by its
// year-header prefix or by an allocation verb among its tokens.
func (c *Classifier) isFiscalYearLine(lineText string, tokens []string) bool {
	if fiscalYearPattern.MatchString(lineText) {
		return true
	}
	for _, token := range tokens {
		for _, verb := range allocationVerbs {
			if token == verb || c.config.Matcher.Ratio(token, verb) >= c.config.FuzzyThreshold {
				return true
			}
		}
	}
	return false
}

// isPlanHeader recognizes a budget-plan header line on a table page: a
// plan-number first token, or a second token starting the แผนงาน label.
func isPlanHeader(tokens []string) bool {
	if planNumberPattern.MatchString(tokens[0]) {
		return true
	}
	return len(tokens) > 1 && strings.HasPrefix(tokens[1], "แผนงาน")
}

// sectionHeaderType recognizes a ผลผลิต/โครงการ section header in the first
// two tokens. A truncated token still matches when it is a fragment of the
// section word, which tolerates extraction damage.
func sectionHeaderType(tokens []string) (EntryType, bool) {
	first := strings.ReplaceAll(tokens[0], ":", "")
	var second string
	if len(tokens) > 1 {
		second = strings.ReplaceAll(tokens[1], ":", "")
	}
	if first == "โครงการ" || (second != "" && strings.Contains("โครงการ", second)) {
		return EntryProject, true
	}
	if first == "ผลผลิต" || (second != "" && strings.Contains("ผลผลิต", second)) {
		return EntryOutput, true
	}
	return "", false
}

// isUnitClassifier reports whether a token is a unit-of-measure classifier
// word.
func isUnitClassifier(token string) bool {
	for _, w := range unitClassifierWords {
		if token == w {
			return true
		}
	}
	return false
}

// closesEntry reports whether a line ends with the currency unit, which
// terminates the open entry. Trailing hyphens and asterisks are ignored.
func closesEntry(tokens []string) bool {
	last := tokens[len(tokens)-1]
	last = strings.Trim(last, "-*")
	return last == currencyUnit
}
