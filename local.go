package datetime

import (
	"time"

	"github.com/whatwg-go/datetime/infra"
)

// LocalDateTime is a Date and a Time with no time-zone attached.
type LocalDateTime struct {
	date Date
	time Time
}

// NewLocalDateTime combines a Date and a Time.
func NewLocalDateTime(date Date, tod Time) LocalDateTime {
	return LocalDateTime{date: date, time: tod}
}

// Date returns the date part.
func (dt LocalDateTime) Date() Date { return dt.date }

// Time returns the time-of-day part.
func (dt LocalDateTime) Time() Time { return dt.time }

// In interprets the local date-time as wall-clock time in the given
// location.
func (dt LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(
		dt.date.Year(), dt.date.Month(), dt.date.Day(),
		dt.time.hour, dt.time.minute, dt.time.second, dt.time.millisecond*1e6,
		loc,
	)
}

// ParseLocalDateTime parses a local date-time string: a date, the literal T
// or a single space, and a time, with no trailing content and no zone.
//
//	dt, ok := datetime.ParseLocalDateTime("2011-11-18T14:54:39.929")
func ParseLocalDateTime(s string) (LocalDateTime, bool) {
	position := 0

	date, ok := ParseDateComponent(s, &position)
	if !ok {
		return LocalDateTime{}, false
	}

	delim, ok := infra.CodepointAt(s, position)
	if !ok || (delim != tokenT && delim != tokenSpace) {
		return LocalDateTime{}, false
	}
	position++

	tod, ok := ParseTimeComponent(s, &position)
	if !ok || position < runeLen(s) {
		return LocalDateTime{}, false
	}

	return LocalDateTime{date: date, time: tod}, true
}
