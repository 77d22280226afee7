package datetime

import "github.com/whatwg-go/datetime/infra"

// TimeZoneOffset is a signed offset from UTC in hours and minutes. The sign
// is shared: both fields are negated for a negative offset, so -00:30 is
// hour 0, minute -30.
type TimeZoneOffset struct {
	hour   int
	minute int
}

// NewTimeZoneOffset validates and builds a TimeZoneOffset. Hour is -23..23
// and minute -59..59; the two must not carry opposite signs.
func NewTimeZoneOffset(hour, minute int) (TimeZoneOffset, bool) {
	if hour < -23 || hour > 23 {
		return TimeZoneOffset{}, false
	}
	if minute < -59 || minute > 59 {
		return TimeZoneOffset{}, false
	}
	if (hour > 0 && minute < 0) || (hour < 0 && minute > 0) {
		return TimeZoneOffset{}, false
	}
	return TimeZoneOffset{hour: hour, minute: minute}, true
}

// Hour returns the signed hour component, -23..23.
func (o TimeZoneOffset) Hour() int { return o.hour }

// Minute returns the signed minute component, -59..59, with the same sign
// as the hour.
func (o TimeZoneOffset) Minute() int { return o.minute }

// Minutes returns the total signed offset in minutes.
func (o TimeZoneOffset) Minutes() int { return o.hour*60 + o.minute }

// IsZero reports whether the offset is +00:00.
func (o TimeZoneOffset) IsZero() bool { return o.hour == 0 && o.minute == 0 }

// ParseTimeZoneOffset parses a time-zone offset string: the literal Z, or a
// sign followed by HH:MM or HHMM with hour 0..23 and minute 0..59.
//
//	o, ok := datetime.ParseTimeZoneOffset("-07:00")
func ParseTimeZoneOffset(s string) (TimeZoneOffset, bool) {
	return parseFormat(s, ParseTimeZoneOffsetComponent)
}

// ParseTimeZoneOffsetComponent parses a time-zone offset component at the
// given cursor position, advancing it past the characters consumed.
//
// When the input at the cursor starts with neither Z nor a sign, nothing is
// consumed and the zero offset is returned: the component treats "no offset
// specified" as zero and leaves trailing-garbage rejection to its caller's
// full-consumption check.
func ParseTimeZoneOffsetComponent(s string, position *int) (TimeZoneOffset, bool) {
	hour, minute := 0, 0

	r, ok := infra.CodepointAt(s, *position)
	switch {
	case ok && r == tokenZ:
		*position++

	case ok && (r == tokenPlus || r == tokenMinus):
		negative := r == tokenMinus
		*position++

		digits := collectASCIIDigits(s, position)
		switch len(digits) {
		case 2:
			hour, _ = digitsToInt(digits)
			if !expect(s, position, tokenColon) {
				return TimeZoneOffset{}, false
			}
			minuteDigits := collectASCIIDigits(s, position)
			if len(minuteDigits) != 2 {
				return TimeZoneOffset{}, false
			}
			minute, _ = digitsToInt(minuteDigits)
		case 4:
			hour, _ = digitsToInt(digits[:2])
			minute, _ = digitsToInt(digits[2:])
		default:
			return TimeZoneOffset{}, false
		}

		if !isValidHour(hour) || !isValidMinOrSec(minute) {
			return TimeZoneOffset{}, false
		}
		if negative {
			hour, minute = -hour, -minute
		}
	}

	return TimeZoneOffset{hour: hour, minute: minute}, true
}
