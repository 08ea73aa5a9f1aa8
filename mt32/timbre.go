package mt32

import (
	"errors"
	"strings"
)

// ErrTimbreOverflow is returned when a dump carries more timbre names than
// one bank of timbre memory holds. The first MaxTimbres are kept.
var ErrTimbreOverflow = errors.New("more than 64 custom timbres in dump")

// TimbreTable lists custom timbre names in the order they appear in the
// dump. Position in the table is what a patch record's memory-group index
// refers to.
type TimbreTable []string

// ScanTimbres collects the name of every timbre-memory write in buf, with
// the name field's padding spaces removed. It returns the table and the
// offset just past the last name read.
//
// The search resumes one byte into each decoded name rather than after it,
// so a prefix embedded in name data is still found.
func ScanTimbres(buf []byte) (TimbreTable, int, error) {
	var (
		table    TimbreTable
		consumed int
	)
	for i := 0; i+len(timbrePrefix) <= len(buf); i++ {
		if !matchAt(buf, i, timbrePrefix) {
			continue
		}
		start := i + len(timbrePrefix) + addrTailSize
		end := start + TimbreNameSize
		if end > len(buf) {
			return table, consumed, ErrMalformedRecord
		}
		if len(table) == MaxTimbres {
			return table, consumed, ErrTimbreOverflow
		}
		table = append(table, strings.TrimRight(decodeName(buf[start:end]), " "))
		consumed = end
		i = start
	}
	return table, consumed, nil
}

// Name returns the timbre at index i, or false when the dump did not
// define one there.
func (t TimbreTable) Name(i int) (string, bool) {
	if i < 0 || i >= len(t) || t[i] == "" {
		return "", false
	}
	return t[i], true
}
