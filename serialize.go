package datetime

import "fmt"

// String returns the canonical month-string form, YYYY-MM, with the year
// zero-padded to at least four digits.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.year, int(ym.month))
}

// String returns the canonical date-string form, YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.ym.year, int(d.ym.month), d.day)
}

// String returns the canonical yearless-date form, MM-DD. The optional
// leading hyphens accepted by the parser are not part of the serialization.
func (yd YearlessDate) String() string {
	return fmt.Sprintf("%02d-%02d", int(yd.month), yd.day)
}

// String returns the canonical week-string form, YYYY-Www.
func (yw YearWeek) String() string {
	return fmt.Sprintf("%04d-W%02d", yw.year, yw.week)
}

// String returns the canonical time-string form: HH:MM when second and
// millisecond are both zero, HH:MM:SS without a fraction when only the
// millisecond is zero, and HH:MM:SS.fff otherwise. The fraction is always
// three digits: fraction digits parse as a millisecond count rather than a
// decimal fraction, so a shortened ".9" would read back as 9ms, not 900ms.
func (t Time) String() string {
	switch {
	case t.second == 0 && t.millisecond == 0:
		return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
	case t.millisecond == 0:
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	default:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.hour, t.minute, t.second, t.millisecond)
	}
}

// String returns Z for the zero offset and the signed HH:MM form otherwise.
func (o TimeZoneOffset) String() string {
	if o.IsZero() {
		return "Z"
	}
	sign := "+"
	hour, minute := o.hour, o.minute
	if hour < 0 || minute < 0 {
		sign = "-"
		hour, minute = -hour, -minute
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hour, minute)
}

// String returns the canonical local date-time form, <date>T<time>.
func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// MarshalText implements encoding.TextMarshaler.
func (ym YearMonth) MarshalText() ([]byte, error) { return []byte(ym.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (ym *YearMonth) UnmarshalText(text []byte) error {
	v, ok := ParseMonth(string(text))
	if !ok {
		return fmt.Errorf("datetime: invalid month string %q", text)
	}
	*ym = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	v, ok := ParseDate(string(text))
	if !ok {
		return fmt.Errorf("datetime: invalid date string %q", text)
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (yd YearlessDate) MarshalText() ([]byte, error) { return []byte(yd.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (yd *YearlessDate) UnmarshalText(text []byte) error {
	v, ok := ParseYearlessDate(string(text))
	if !ok {
		return fmt.Errorf("datetime: invalid yearless date string %q", text)
	}
	*yd = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (yw YearWeek) MarshalText() ([]byte, error) { return []byte(yw.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (yw *YearWeek) UnmarshalText(text []byte) error {
	v, ok := ParseWeek(string(text))
	if !ok {
		return fmt.Errorf("datetime: invalid week string %q", text)
	}
	*yw = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	v, ok := ParseTime(string(text))
	if !ok {
		return fmt.Errorf("datetime: invalid time string %q", text)
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o TimeZoneOffset) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *TimeZoneOffset) UnmarshalText(text []byte) error {
	v, ok := ParseTimeZoneOffset(string(text))
	if !ok {
		return fmt.Errorf("datetime: invalid time-zone offset string %q", text)
	}
	*o = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (dt LocalDateTime) MarshalText() ([]byte, error) { return []byte(dt.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *LocalDateTime) UnmarshalText(text []byte) error {
	v, ok := ParseLocalDateTime(string(text))
	if !ok {
		return fmt.Errorf("datetime: invalid local date-time string %q", text)
	}
	*dt = v
	return nil
}
