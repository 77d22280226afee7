package datetime

import "time"

// isLeapYear implements the proleptic-Gregorian leap rule: divisible by 400,
// or divisible by 4 and not by 100.
func isLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// MaxDaysInMonth returns the number of days in the given month of the given
// year: 31, 30, or for February 28 or 29 depending on the leap rule. The
// second result is false when month is outside January..December.
func MaxDaysInMonth(month time.Month, year int) (int, bool) {
	switch month {
	case time.January, time.March, time.May, time.July,
		time.August, time.October, time.December:
		return 31, true
	case time.April, time.June, time.September, time.November:
		return 30, true
	case time.February:
		if isLeapYear(year) {
			return 29, true
		}
		return 28, true
	default:
		return 0, false
	}
}

// WeeksInYear returns the number of weeks in a week-year: 53 when January 1
// falls on a Thursday, or on a Wednesday in a leap year, and 52 otherwise.
// The second result is false only when the calendar cannot represent
// January 1 of that year, which cannot happen for any year produced by the
// parsers.
func WeeksInYear(year int) (int, bool) {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	if jan1.Year() != year {
		return 0, false
	}
	switch jan1.Weekday() {
	case time.Thursday:
		return 53, true
	case time.Wednesday:
		if isLeapYear(year) {
			return 53, true
		}
		return 52, true
	default:
		return 52, true
	}
}
