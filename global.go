package datetime

import (
	"time"

	"github.com/whatwg-go/datetime/infra"
)

// ParseGlobalDateTime parses a global date-time string: a date, the literal
// T or a single space, a time, and a time-zone offset, with no trailing
// content. The result is the absolute instant in UTC: the offset's total
// minutes are subtracted from the composed date-time, and the subtraction
// may roll the date over a day boundary.
//
//	t, ok := datetime.ParseGlobalDateTime("2011-11-18T14:54Z")
func ParseGlobalDateTime(s string) (time.Time, bool) {
	position := 0

	date, ok := ParseDateComponent(s, &position)
	if !ok {
		return time.Time{}, false
	}

	delim, ok := infra.CodepointAt(s, position)
	if !ok || (delim != tokenT && delim != tokenSpace) {
		return time.Time{}, false
	}
	position++

	tod, ok := ParseTimeComponent(s, &position)
	if !ok {
		return time.Time{}, false
	}

	offset, ok := ParseTimeZoneOffsetComponent(s, &position)
	if !ok || position < runeLen(s) {
		return time.Time{}, false
	}

	composed := time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.hour, tod.minute, tod.second, tod.millisecond*1e6,
		time.UTC,
	)
	return composed.Add(-time.Duration(offset.Minutes()) * time.Minute), true
}
