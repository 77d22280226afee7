// Package codec bridges WHATWG microsyntax wire strings and time.Time
// domain values. The core parsers in the root package report failure with a
// bare boolean; the codecs wrap that boundary in errors so they can slot
// into marshalling pipelines.
package codec

import "errors"

// ErrInvalidFormat is wrapped by every decode or encode failure.
var ErrInvalidFormat = errors.New("codec: invalid date/time format")

// Codec converts between a wire representation W and a domain
// representation D. For the codecs in this package the wire side is always
// the canonical microsyntax string.
type Codec[W, D any] interface {
	Decode(w W) (D, error)
	Encode(d D) (W, error)
}
