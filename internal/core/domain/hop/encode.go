package hop

import "strings"

const upperHex = "0123456789ABCDEF"

// shouldEscape reports whether b belongs to the fragment encode set: ASCII
// controls, space, '"', '<', '>', '`' and every non-ASCII byte.
func shouldEscape(b byte) bool {
	switch {
	case b < 0x20, b == 0x7f, b >= 0x80:
		return true
	}
	switch b {
	case ' ', '"', '<', '>', '`':
		return true
	}
	return false
}

// Encode percent-encodes s against the fragment encode set. Bytes outside
// the set, including '%', are copied through unchanged, so encoding an
// already safe string is a no-op.
func Encode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
