package infra

// IsASCIITabNewline reports whether r is U+0009 TAB, U+000A LF, or
// U+000D CR.
func IsASCIITabNewline(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

// IsC0Control reports whether r is a C0 control, U+0000 NULL through
// U+001F INFORMATION SEPARATOR ONE. Note that unlike unicode.IsControl this
// does not include U+007F DELETE.
func IsC0Control(r rune) bool {
	return r >= 0 && r <= 0x001F
}

// IsC0ControlSpace reports whether r is a C0 control or U+0020 SPACE.
func IsC0ControlSpace(r rune) bool {
	return r >= 0 && r <= 0x0020
}

// IsNoncharacter reports whether r is a noncharacter: a codepoint in the
// range U+FDD0..U+FDEF, or one of the two final codepoints U+xxFFFE and
// U+xxFFFF of each of the seventeen Unicode planes.
func IsNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	if r < 0 || r > 0x10FFFF {
		return false
	}
	low := r & 0xFFFF
	return low == 0xFFFE || low == 0xFFFF
}
