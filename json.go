package datetime

import (
	"encoding"

	json "github.com/goccy/go-json"
)

// The JSON form of every value type is its canonical microsyntax string.

func marshalJSONText(m encoding.TextMarshaler) ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func unmarshalJSONText(data []byte, u encoding.TextUnmarshaler) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

// MarshalJSON implements json.Marshaler.
func (ym YearMonth) MarshalJSON() ([]byte, error) { return marshalJSONText(ym) }

// UnmarshalJSON implements json.Unmarshaler.
func (ym *YearMonth) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, ym) }

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) { return marshalJSONText(d) }

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, d) }

// MarshalJSON implements json.Marshaler.
func (yd YearlessDate) MarshalJSON() ([]byte, error) { return marshalJSONText(yd) }

// UnmarshalJSON implements json.Unmarshaler.
func (yd *YearlessDate) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, yd) }

// MarshalJSON implements json.Marshaler.
func (yw YearWeek) MarshalJSON() ([]byte, error) { return marshalJSONText(yw) }

// UnmarshalJSON implements json.Unmarshaler.
func (yw *YearWeek) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, yw) }

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) { return marshalJSONText(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, t) }

// MarshalJSON implements json.Marshaler.
func (o TimeZoneOffset) MarshalJSON() ([]byte, error) { return marshalJSONText(o) }

// UnmarshalJSON implements json.Unmarshaler.
func (o *TimeZoneOffset) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, o) }

// MarshalJSON implements json.Marshaler.
func (dt LocalDateTime) MarshalJSON() ([]byte, error) { return marshalJSONText(dt) }

// UnmarshalJSON implements json.Unmarshaler.
func (dt *LocalDateTime) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, dt) }
