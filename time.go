package datetime

import (
	"strings"

	"github.com/whatwg-go/datetime/infra"
)

// Time is a time of day: hour, minute, second, and a millisecond fraction.
type Time struct {
	hour        int
	minute      int
	second      int
	millisecond int
}

// NewTime validates and builds a Time. Hour is 0..23, minute and second
// 0..59, millisecond 0..999.
func NewTime(hour, minute, second, millisecond int) (Time, bool) {
	if !isValidHour(hour) || !isValidMinOrSec(minute) || !isValidMinOrSec(second) {
		return Time{}, false
	}
	if millisecond < 0 || millisecond > 999 {
		return Time{}, false
	}
	return Time{hour: hour, minute: minute, second: second, millisecond: millisecond}, true
}

// Hour returns the hour, 0..23.
func (t Time) Hour() int { return t.hour }

// Minute returns the minute, 0..59.
func (t Time) Minute() int { return t.minute }

// Second returns the second, 0..59. It is 0 when the input had no seconds
// part.
func (t Time) Second() int { return t.second }

// Millisecond returns the millisecond fraction, 0..999.
func (t Time) Millisecond() int { return t.millisecond }

// ParseTime parses a time string in the form HH:MM, HH:MM:SS, or
// HH:MM:SS.fff.
//
//	t, ok := datetime.ParseTime("14:54:39.929")
func ParseTime(s string) (Time, bool) {
	return parseFormat(s, ParseTimeComponent)
}

// ParseTimeComponent parses a time component at the given cursor position,
// advancing it past the characters consumed. Composite formats embed this;
// most callers want ParseTime.
func ParseTimeComponent(s string, position *int) (Time, bool) {
	hourDigits := collectASCIIDigits(s, position)
	if len(hourDigits) != 2 {
		return Time{}, false
	}
	hour, ok := digitsToInt(hourDigits)
	if !ok || !isValidHour(hour) {
		return Time{}, false
	}

	if !expect(s, position, tokenColon) {
		return Time{}, false
	}

	minuteDigits := collectASCIIDigits(s, position)
	if len(minuteDigits) != 2 {
		return Time{}, false
	}
	minute, ok := digitsToInt(minuteDigits)
	if !ok || !isValidMinOrSec(minute) {
		return Time{}, false
	}

	second, millisecond := 0, 0
	if r, ok := infra.CodepointAt(s, *position); ok && r == tokenColon {
		*position++
		if *position >= runeLen(s) {
			return Time{}, false
		}
		run := infra.CollectCodepoints(s, position, func(r rune) bool {
			return isASCIIDigit(r) || r == tokenDot
		})
		second, millisecond, ok = splitSecondsRun(run)
		if !ok || strings.Count(s, ".") >= 2 {
			return Time{}, false
		}
	}

	return NewTime(hour, minute, second, millisecond)
}

// splitSecondsRun interprets a run of digits and dots as integer seconds and
// a millisecond fraction. The integer part must be exactly two digits in
// 0..59. Only the first up to three fraction digits are significant; longer
// fractions are truncated, shorter ones taken as-is without right-padding.
// A dot with nothing after it is rejection.
func splitSecondsRun(run string) (second, millisecond int, ok bool) {
	intPart := run
	fracPart := ""
	if i := strings.IndexRune(run, tokenDot); i >= 0 {
		intPart, fracPart = run[:i], run[i+1:]
		if fracPart == "" {
			return 0, 0, false
		}
	}

	if len(intPart) != 2 {
		return 0, 0, false
	}
	second, ok = digitsToInt(intPart)
	if !ok || !isValidMinOrSec(second) {
		return 0, 0, false
	}

	if fracPart != "" {
		if len(fracPart) > 3 {
			fracPart = fracPart[:3]
		}
		millisecond, ok = digitsToInt(fracPart)
		if !ok {
			return 0, 0, false
		}
	}

	return second, millisecond, true
}
