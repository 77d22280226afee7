package datetime

import "time"

// YearlessDate is a Gregorian month and day without an associated year.
type YearlessDate struct {
	month time.Month
	day   int
}

// NewYearlessDate validates and builds a YearlessDate. With no year to
// consult, the day bound is the month's maximum over all years: February
// caps at 29, April, June, September, and November at 30, the rest at 31.
func NewYearlessDate(month time.Month, day int) (YearlessDate, bool) {
	if !isValidMonth(int(month)) || day < 1 {
		return YearlessDate{}, false
	}
	switch month {
	case time.February:
		if day > 29 {
			return YearlessDate{}, false
		}
	case time.April, time.June, time.September, time.November:
		if day > 30 {
			return YearlessDate{}, false
		}
	default:
		if day > 31 {
			return YearlessDate{}, false
		}
	}
	return YearlessDate{month: month, day: day}, true
}

// Month returns the month component, January..December.
func (yd YearlessDate) Month() time.Month { return yd.month }

// Day returns the day of the month.
func (yd YearlessDate) Day() int { return yd.day }

// ParseYearlessDate parses a yearless date string in the form MM-DD or
// --MM-DD.
//
//	yd, ok := datetime.ParseYearlessDate("11-18")
func ParseYearlessDate(s string) (YearlessDate, bool) {
	return parseFormat(s, ParseYearlessDateComponent)
}

// ParseYearlessDateComponent parses a yearless date component at the given
// cursor position, advancing it past the characters consumed.
func ParseYearlessDateComponent(s string, position *int) (YearlessDate, bool) {
	// The grammar allows exactly zero or exactly two leading hyphens; one,
	// or three or more, is rejection.
	hyphens := collectHyphens(s, position)
	if hyphens != 0 && hyphens != 2 {
		return YearlessDate{}, false
	}
	month, ok := collectMonthAndValidate(s, position)
	if !ok {
		return YearlessDate{}, false
	}
	if !expect(s, position, tokenHyphen) {
		return YearlessDate{}, false
	}
	day, ok := collectDayAndValidate(s, position, month)
	if !ok {
		return YearlessDate{}, false
	}
	return NewYearlessDate(month, day)
}
