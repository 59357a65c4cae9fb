package tree

import "testing"

func TestAmountFromString(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"1. งบรายจ่ายอื่น 3,469,200 บาท", 3469200},
		{"1) การสัมมนาเสริมสร้างเครือข่าย 30,000 บาท", 30000},
		{"3.2.1 ค่าจ้างเหมาบริการ - บาท", 0},
		{"ปี 2563 ตั้งงบประมาณ 616,834,700 บาท", 616834700},
		{"ค่าธรรมเนียม 12.50 บาท", 12.5},
		{"ไม่มีจำนวนเงิน", 0},
		{"", 0},
	}
	for _, tc := range tests {
		if got := AmountFromString(tc.text); got != tc.want {
			t.Errorf("AmountFromString(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestYearRangeFromString(t *testing.T) {
	tests := []struct {
		text          string
		year, yearEnd int
	}{
		{"ปี 2563 ตั้งงบประมาณ 616,834,700 บาท", 2563, 2563},
		{"ปี 2563-2564 ตั้งงบประมาณ 616,834,700 บาท", 2563, 2564},
		{"ปี 2563 - 2564 ตั้งงบประมาณ 616,834,700 บาท", 2563, 2564},
		{"ปี 2563- 2564 ตั้งงบประมาณ 616,834,700 บาท", 2563, 2564},
		{"a 2563 - 2564 ตั้งงบประมาณ 616,834,700 บาท", 2563, 2564},
		{"a 2563 = 2564 ตั้งงบประมาณ 616,834,700 บาท", 2563, 2564},
		{"ไม่มีปีที่ระบุ", 0, 0},
	}
	for _, tc := range tests {
		year, yearEnd := YearRangeFromString(tc.text)
		if year != tc.year || yearEnd != tc.yearEnd {
			t.Errorf("YearRangeFromString(%q) = (%d, %d), want (%d, %d)",
				tc.text, year, yearEnd, tc.year, tc.yearEnd)
		}
	}
}
