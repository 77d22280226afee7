package datetime

import (
	"encoding"

	"gopkg.in/yaml.v3"
)

// YAML decoding for the value types. Encoding needs no methods here: the
// yaml.v3 encoder picks up encoding.TextMarshaler and emits the canonical
// string form.

func unmarshalYAMLText(value *yaml.Node, u encoding.TextUnmarshaler) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ym *YearMonth) UnmarshalYAML(value *yaml.Node) error { return unmarshalYAMLText(value, ym) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error { return unmarshalYAMLText(value, d) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (yd *YearlessDate) UnmarshalYAML(value *yaml.Node) error { return unmarshalYAMLText(value, yd) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (yw *YearWeek) UnmarshalYAML(value *yaml.Node) error { return unmarshalYAMLText(value, yw) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Time) UnmarshalYAML(value *yaml.Node) error { return unmarshalYAMLText(value, t) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *TimeZoneOffset) UnmarshalYAML(value *yaml.Node) error { return unmarshalYAMLText(value, o) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (dt *LocalDateTime) UnmarshalYAML(value *yaml.Node) error { return unmarshalYAMLText(value, dt) }
