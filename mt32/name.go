package mt32

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// decodeName converts a fixed-width device text field to a string. The
// field ends at the first NUL; bytes above 0x7F are mapped through Latin-1
// so the result is always valid UTF-8.
func decodeName(field []byte) string {
	var sb strings.Builder
	sb.Grow(len(field))
	for _, b := range field {
		if b == 0 {
			break
		}
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(b))
	}
	return sb.String()
}
