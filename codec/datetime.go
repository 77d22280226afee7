package codec

import (
	"fmt"
	"time"

	"github.com/whatwg-go/datetime"
)

// Date returns a Codec between date strings (YYYY-MM-DD) and time.Time at
// midnight UTC.
func Date() Codec[string, time.Time] { return dateCodec{} }

type dateCodec struct{}

func (dateCodec) Decode(w string) (time.Time, error) {
	d, ok := datetime.ParseDate(w)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidFormat, w)
	}
	return d.Time(), nil
}

func (dateCodec) Encode(t time.Time) (string, error) {
	y, m, d := t.Date()
	v, ok := datetime.NewDate(y, m, d)
	if !ok {
		return "", fmt.Errorf("%w: date %v", ErrInvalidFormat, t)
	}
	return v.String(), nil
}

// LocalDateTime returns a Codec between local date-time strings and
// time.Time wall-clock values in UTC, with no zone designator on the wire.
func LocalDateTime() Codec[string, time.Time] { return localDateTimeCodec{} }

type localDateTimeCodec struct{}

func (localDateTimeCodec) Decode(w string) (time.Time, error) {
	dt, ok := datetime.ParseLocalDateTime(w)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: local date-time %q", ErrInvalidFormat, w)
	}
	return dt.In(time.UTC), nil
}

func (localDateTimeCodec) Encode(t time.Time) (string, error) {
	s, err := formatDateTime(t)
	if err != nil {
		return "", err
	}
	// Round-trip through the parser so the output is guaranteed wire-valid.
	if _, ok := datetime.ParseLocalDateTime(s); !ok {
		return "", fmt.Errorf("%w: local date-time %v", ErrInvalidFormat, t)
	}
	return s, nil
}

// GlobalDateTime returns a Codec between global date-time strings and
// absolute UTC instants. Decoding subtracts the wire offset; encoding
// always emits the Z zone designator.
func GlobalDateTime() Codec[string, time.Time] { return globalDateTimeCodec{} }

type globalDateTimeCodec struct{}

func (globalDateTimeCodec) Decode(w string) (time.Time, error) {
	t, ok := datetime.ParseGlobalDateTime(w)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: global date-time %q", ErrInvalidFormat, w)
	}
	return t, nil
}

func (globalDateTimeCodec) Encode(t time.Time) (string, error) {
	s, err := formatDateTime(t.UTC())
	if err != nil {
		return "", err
	}
	s += "Z"
	if _, ok := datetime.ParseGlobalDateTime(s); !ok {
		return "", fmt.Errorf("%w: global date-time %v", ErrInvalidFormat, t)
	}
	return s, nil
}

// formatDateTime renders t's wall-clock reading as <date>T<time>.
// Sub-millisecond precision does not survive the trip; the microsyntax
// fraction is milliseconds.
func formatDateTime(t time.Time) (string, error) {
	d, ok := datetime.NewDate(t.Year(), t.Month(), t.Day())
	if !ok {
		return "", fmt.Errorf("%w: date-time %v", ErrInvalidFormat, t)
	}
	tod, ok := datetime.NewTime(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1e6)
	if !ok {
		return "", fmt.Errorf("%w: date-time %v", ErrInvalidFormat, t)
	}
	return d.String() + "T" + tod.String(), nil
}
