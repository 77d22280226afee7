package datetime

// YearWeek is a week-year and a week number within it.
type YearWeek struct {
	year int
	week int
}

// NewYearWeek validates and builds a YearWeek. The year must be greater
// than 0 and the week between 1 and WeeksInYear(year), inclusive.
func NewYearWeek(year, week int) (YearWeek, bool) {
	if year <= 0 {
		return YearWeek{}, false
	}
	maxWeeks, ok := WeeksInYear(year)
	if !ok || week < 1 || week > maxWeeks {
		return YearWeek{}, false
	}
	return YearWeek{year: year, week: week}, true
}

// Year returns the week-year. It is always greater than 0.
func (yw YearWeek) Year() int { return yw.year }

// Week returns the week number, 1 to the year's week count.
func (yw YearWeek) Week() int { return yw.week }

// ParseWeek parses a week string in the form YYYY-Www: at least one digit of
// year greater than 0, a hyphen, the literal W, and exactly two digits of
// week number bounded by the year's week count.
//
//	yw, ok := datetime.ParseWeek("2011-W47")
//
// No composite format embeds weeks, so there is no component variant.
func ParseWeek(s string) (YearWeek, bool) {
	position := 0

	yearDigits := collectASCIIDigits(s, &position)
	if yearDigits == "" {
		return YearWeek{}, false
	}
	year, ok := digitsToInt(yearDigits)
	if !ok || year <= 0 {
		return YearWeek{}, false
	}

	if !expect(s, &position, tokenHyphen) {
		return YearWeek{}, false
	}
	if !expect(s, &position, tokenAbbrWeek) {
		return YearWeek{}, false
	}

	weekDigits := collectASCIIDigits(s, &position)
	if len(weekDigits) != 2 {
		return YearWeek{}, false
	}
	week, ok := digitsToInt(weekDigits)
	if !ok {
		return YearWeek{}, false
	}
	if position < runeLen(s) {
		return YearWeek{}, false
	}

	return NewYearWeek(year, week)
}
