package infra

// UTF-16 surrogate ranges.
const (
	LeadingSurrogateMin  uint16 = 0xD800
	LeadingSurrogateMax  uint16 = 0xDBFF
	TrailingSurrogateMin uint16 = 0xDC00
	TrailingSurrogateMax uint16 = 0xDFFF
	SurrogateMin                = LeadingSurrogateMin
	SurrogateMax                = TrailingSurrogateMax
)

// IsSurrogate reports whether c is a UTF-16 surrogate code unit,
// U+D800..U+DFFF.
func IsSurrogate(c uint16) bool {
	return c >= SurrogateMin && c <= SurrogateMax
}

// IsLeadingSurrogate reports whether c is in U+D800..U+DBFF.
func IsLeadingSurrogate(c uint16) bool {
	return c >= LeadingSurrogateMin && c <= LeadingSurrogateMax
}

// IsTrailingSurrogate reports whether c is in U+DC00..U+DFFF.
func IsTrailingSurrogate(c uint16) bool {
	return c >= TrailingSurrogateMin && c <= TrailingSurrogateMax
}
