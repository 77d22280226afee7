package datetime

import "time"

// Date is a proleptic-Gregorian calendar date: a YearMonth plus a day of the
// month.
type Date struct {
	ym  YearMonth
	day int
}

// NewDate validates and builds a Date. The day must lie within the month's
// day count for the year, and the final combination is confirmed against the
// standard calendar. time.Date normalizes out-of-range values instead of
// failing, so the confirmation is a round-trip through its components.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	ym, ok := NewYearMonth(year, month)
	if !ok {
		return Date{}, false
	}
	maxDays, ok := MaxDaysInMonth(month, year)
	if !ok || day < 1 || day > maxDays {
		return Date{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if ty, tm, td := t.Date(); ty != year || tm != month || td != day {
		return Date{}, false
	}
	return Date{ym: ym, day: day}, true
}

// Year returns the year component. It is never zero.
func (d Date) Year() int { return d.ym.year }

// Month returns the month component, January..December.
func (d Date) Month() time.Month { return d.ym.month }

// Day returns the day of the month, 1 to the month's day count.
func (d Date) Day() int { return d.day }

// YearMonth returns the year-month part of the date.
func (d Date) YearMonth() YearMonth { return d.ym }

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.ym.year, d.ym.month, d.day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date string in the form YYYY-MM-DD.
//
//	d, ok := datetime.ParseDate("2011-11-18")
//
// February 29 is accepted only in leap years; day and month are always two
// digits and the year at least four.
func ParseDate(s string) (Date, bool) {
	return parseFormat(s, ParseDateComponent)
}

// ParseDateComponent parses a date component at the given cursor position,
// advancing it past the characters consumed. Composite formats embed this;
// most callers want ParseDate.
func ParseDateComponent(s string, position *int) (Date, bool) {
	ym, ok := ParseMonthComponent(s, position)
	if !ok {
		return Date{}, false
	}
	if !expect(s, position, tokenHyphen) {
		return Date{}, false
	}
	day, ok := collectDayAndValidate(s, position, ym.month)
	if !ok {
		return Date{}, false
	}
	// collectDayAndValidate caps February at 29; NewDate re-checks against
	// the actual year's leap status.
	return NewDate(ym.year, ym.month, day)
}
