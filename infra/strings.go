// Package infra provides generic text utilities from the WHATWG Infra
// Standard:
//
// - Cursor-based codepoint collection and lookahead (CollectCodepoints,
//   SkipCodepoints, CodepointAt) used by the microsyntax parsers
// - Newline normalization and stripping
// - ASCII-whitespace trimming and collapsing
// - Codepoint and UTF-16 surrogate predicates
//
// Cursor positions are rune offsets, never byte offsets. A position at or
// past the end of the string means "no more input"; it is never an error.
package infra

import "strings"

// IsASCIIWhitespace reports whether r is an ASCII whitespace codepoint:
// U+0009 TAB, U+000A LF, U+000C FF, U+000D CR, or U+0020 SPACE.
func IsASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// CollectCodepoints consumes the maximal run of codepoints satisfying the
// predicate, starting at the rune offset *position, and returns the run as a
// string. The position advances by the number of runes consumed. Collection
// never fails; callers decide rejection by inspecting the result.
func CollectCodepoints(s string, position *int, predicate func(rune) bool) string {
	if *position < 0 {
		return ""
	}
	var b strings.Builder
	i := 0
	for _, r := range s {
		if i < *position {
			i++
			continue
		}
		if !predicate(r) {
			break
		}
		b.WriteRune(r)
		*position++
		i++
	}
	return b.String()
}

// SkipCodepoints is the non-allocating form of CollectCodepoints for runs
// whose content the caller does not need.
func SkipCodepoints(s string, position *int, predicate func(rune) bool) {
	if *position < 0 {
		return
	}
	i := 0
	for _, r := range s {
		if i < *position {
			i++
			continue
		}
		if !predicate(r) {
			break
		}
		*position++
		i++
	}
}

// CodepointAt returns the rune at the given rune offset without advancing
// anything. The second result is false when the position is out of range.
func CodepointAt(s string, position int) (rune, bool) {
	if position < 0 {
		return 0, false
	}
	i := 0
	for _, r := range s {
		if i == position {
			return r, true
		}
		i++
	}
	return 0, false
}

// SkipASCIIWhitespace moves the position past any run of ASCII whitespace.
func SkipASCIIWhitespace(s string, position *int) {
	SkipCodepoints(s, position, IsASCIIWhitespace)
}

// NormalizeNewlines replaces every U+000D U+000A pair with a single U+000A,
// and any remaining U+000D with U+000A.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// StripNewlines removes every U+000A LF and U+000D CR codepoint.
func StripNewlines(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

// TrimASCIIWhitespace removes ASCII whitespace from both ends of s.
func TrimASCIIWhitespace(s string) string {
	return strings.TrimFunc(s, IsASCIIWhitespace)
}

// TrimCollapseASCIIWhitespace removes ASCII whitespace from both ends of s
// and replaces every interior run of ASCII whitespace with a single
// U+0020 SPACE.
func TrimCollapseASCIIWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSeenWhitespace := false
	for _, r := range s {
		if IsASCIIWhitespace(r) {
			if !lastSeenWhitespace {
				lastSeenWhitespace = true
				b.WriteRune(' ')
			}
			continue
		}
		lastSeenWhitespace = false
		b.WriteRune(r)
	}
	return TrimASCIIWhitespace(b.String())
}
