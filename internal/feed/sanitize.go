package feed

// sanitize.go cleans up common export artifacts before CSV parsing:
//
//   - a UTF-8 BOM (0xEF 0xBB 0xBF) prepended by Windows tooling
//   - invalid UTF-8 sequences, replaced with '?' so a single bad byte
//     never aborts the whole load

import (
	"bytes"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// sanitize strips a leading BOM and replaces invalid UTF-8 sequences.
// The input slice is returned unchanged when it is already clean.
func sanitize(b []byte) []byte {
	b = bytes.TrimPrefix(b, utf8BOM)
	if utf8.Valid(b) {
		return b
	}
	return bytes.ToValidUTF8(b, []byte("?"))
}
