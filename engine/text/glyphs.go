// Package text implements the single-line glyph walk shared by text drawing
// and measuring. Text is processed byte by byte: UTF-8 continuation bytes are
// dropped and every other byte selects one entry of a 128-glyph table.
package text

// MaxCode is the highest code point with a glyph; larger values clamp to it.
const MaxCode = 127

// IsContinuation reports whether b is a UTF-8 continuation byte (10xxxxxx).
func IsContinuation(b byte) bool { return b&0xc0 == 0x80 }

// CodePoint maps a leading byte to its glyph index.
func CodePoint(b byte) int {
	return min(int(b), MaxCode)
}

// Each calls fn with the clamped code point of every leading byte of s, left
// to right. At most maxLen leading bytes are visited; a negative maxLen
// visits the whole string.
func Each(s string, maxLen int, fn func(code int)) {
	for i := 0; i < len(s) && maxLen != 0; i++ {
		b := s[i]
		if IsContinuation(b) {
			continue
		}
		fn(CodePoint(b))
		maxLen--
	}
}

// Width sums advance(code) over the glyphs Each would visit.
func Width(s string, maxLen int, advance func(code int) int) int {
	w := 0
	Each(s, maxLen, func(code int) { w += advance(code) })
	return w
}

// Truncate returns the prefix of s that Each visits for maxLen, keeping the
// continuation bytes of the last visited glyph.
func Truncate(s string, maxLen int) string {
	if maxLen < 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if IsContinuation(s[i]) {
			continue
		}
		if n == maxLen {
			return s[:i]
		}
		n++
	}
	return s
}
