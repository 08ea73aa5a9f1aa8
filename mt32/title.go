package mt32

import "strings"

// HasTitle reports whether the dump opens with a display-write message,
// which games use to put their name on the MT-32 LCD.
func HasTitle(buf []byte) bool {
	if len(buf) < titleOffset {
		return false
	}
	return buf[5] == displayAddr[0] && buf[6] == displayAddr[1] && buf[7] == displayAddr[2]
}

// ExtractTitle returns the LCD text of the opening display-write message
// with surrounding padding spaces removed. Dumps without one, or whose text
// is blank, get fallback.
func ExtractTitle(buf []byte, fallback string) string {
	if title, ok := decodeTitle(buf); ok {
		return title
	}
	return fallback
}

func decodeTitle(buf []byte) (string, bool) {
	if !HasTitle(buf) {
		return "", false
	}
	end := titleOffset + TitleSize
	if end > len(buf) {
		end = len(buf)
	}
	title := strings.Trim(decodeName(buf[titleOffset:end]), " ")
	return title, title != ""
}
