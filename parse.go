package datetime

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/whatwg-go/datetime/infra"
)

// Literal runes shared by the format grammars.
const (
	tokenHyphen   = '-'
	tokenColon    = ':'
	tokenDot      = '.'
	tokenT        = 'T'
	tokenZ        = 'Z'
	tokenPlus     = '+'
	tokenMinus    = '-'
	tokenSpace    = ' '
	tokenAbbrWeek = 'W'
)

// parseFormat runs a component parser from position zero and requires it to
// consume the entire input. Leftover characters mean rejection.
func parseFormat[T any](s string, parse func(string, *int) (T, bool)) (T, bool) {
	position := 0
	v, ok := parse(s, &position)
	if !ok || position < runeLen(s) {
		var zero T
		return zero, false
	}
	return v, true
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func collectASCIIDigits(s string, position *int) string {
	return infra.CollectCodepoints(s, position, isASCIIDigit)
}

// collectHyphens consumes a run of hyphens at the cursor and reports how
// many were consumed.
func collectHyphens(s string, position *int) int {
	start := *position
	infra.SkipCodepoints(s, position, func(r rune) bool { return r == tokenHyphen })
	return *position - start
}

// expect consumes the rune at the current position when it matches want.
func expect(s string, position *int, want rune) bool {
	r, ok := infra.CodepointAt(s, *position)
	if !ok || r != want {
		return false
	}
	*position++
	return true
}

// digitsToInt converts a run of ASCII digits to an int. Overflow rejects;
// the grammars place no upper bound on digit counts, so absurdly long runs
// fail here rather than wrapping.
func digitsToInt(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

func isValidHour(hour int) bool {
	return hour >= 0 && hour <= 23
}

func isValidMinOrSec(v int) bool {
	return v >= 0 && v <= 59
}

// collectMonthAndValidate consumes exactly two digits and checks the month
// range 1..12.
func collectMonthAndValidate(s string, position *int) (time.Month, bool) {
	digits := collectASCIIDigits(s, position)
	if len(digits) != 2 {
		return 0, false
	}
	month, ok := digitsToInt(digits)
	if !ok || !isValidMonth(month) {
		return 0, false
	}
	return time.Month(month), true
}

// collectDayAndValidate consumes exactly two digits and bounds the day by
// the month's maximum. Year 4 is a leap year, so February admits 29 here;
// callers holding a real year re-confirm against it.
func collectDayAndValidate(s string, position *int, month time.Month) (int, bool) {
	digits := collectASCIIDigits(s, position)
	if len(digits) != 2 {
		return 0, false
	}
	day, ok := digitsToInt(digits)
	if !ok {
		return 0, false
	}
	maxDays, ok := MaxDaysInMonth(month, 4)
	if !ok || day < 1 || day > maxDays {
		return 0, false
	}
	return day, true
}
