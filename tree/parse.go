package tree

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	amountPattern = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d+)?) บาท`)
	digitRuns     = regexp.MustCompile(`\d+`)
)

// AmountFromString extracts the first baht amount stated in s. Text with no
// recognizable amount yields 0.
func AmountFromString(s string) float64 {
	match := amountPattern.FindStringSubmatch(s)
	if match == nil {
		return 0
	}
	raw := strings.ReplaceAll(match[1], ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return amount
}

// YearRangeFromString extracts the fiscal-year range stated in s. Years are
// the runs of exactly four digits, which keeps grouped amounts such as
// 616,834,700 from reading as years. The first run is the start year; a
// second run, if present, is the end year, otherwise the range is a single
// year. No run at all yields (0, 0).
func YearRangeFromString(s string) (year, yearEnd int) {
	var years []int
	for _, run := range digitRuns.FindAllString(s, -1) {
		if len(run) != 4 {
			continue
		}
		y, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		years = append(years, y)
	}
	switch len(years) {
	case 0:
		return 0, 0
	case 1:
		return years[0], years[0]
	default:
		return years[0], years[1]
	}
}
