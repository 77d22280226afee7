package datetime

import "time"

// YearMonth is a proleptic-Gregorian year and month, with no day, time, or
// zone information.
type YearMonth struct {
	year  int
	month time.Month
}

// NewYearMonth validates and builds a YearMonth. The year must be nonzero
// (there is no year 0 in the proleptic-Gregorian calendar) and the month
// must be January..December.
func NewYearMonth(year int, month time.Month) (YearMonth, bool) {
	if year == 0 || !isValidMonth(int(month)) {
		return YearMonth{}, false
	}
	return YearMonth{year: year, month: month}, true
}

// Year returns the year component. It is never zero.
func (ym YearMonth) Year() int { return ym.year }

// Month returns the month component, January..December.
func (ym YearMonth) Month() time.Month { return ym.month }

// ParseMonth parses a month string in the form YYYY-MM: at least four digits
// of nonzero year, a hyphen, and exactly two digits of month.
//
//	ym, ok := datetime.ParseMonth("2011-11")
func ParseMonth(s string) (YearMonth, bool) {
	return parseFormat(s, ParseMonthComponent)
}

// ParseMonthComponent parses a month component at the given cursor position,
// advancing it past the characters consumed. Composite formats embed this;
// most callers want ParseMonth.
func ParseMonthComponent(s string, position *int) (YearMonth, bool) {
	digits := collectASCIIDigits(s, position)
	if len(digits) < 4 {
		return YearMonth{}, false
	}
	year, ok := digitsToInt(digits)
	if !ok || year == 0 {
		return YearMonth{}, false
	}
	if !expect(s, position, tokenHyphen) {
		return YearMonth{}, false
	}
	month, ok := collectMonthAndValidate(s, position)
	if !ok {
		return YearMonth{}, false
	}
	return YearMonth{year: year, month: month}, true
}
