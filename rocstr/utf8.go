package rocstr

import (
	"unicode/utf8"
)

// text is either kind of UTF-8 byte sequence the scanner accepts.
type text interface {
	~string | ~[]byte
}

// extractWithin returns the length of the longest prefix of b which is at
// most limit bytes long and ends on a code point boundary.
//
// If b[limit] starts a code point (ASCII or a leading byte), the prefix is
// exactly limit bytes; otherwise we walk back to the byte which starts the
// code point being cut. E.g. for "Löwe 老虎" and limit 2 the result is 1
// ("L"), since the second byte of "ö" is a continuation byte.
//
// The walk never goes below zero, so even malformed input can't make it
// run off the buffer.
func extractWithin[T text](b T, limit int) int {
	if limit < 0 {
		return 0
	}

	if limit >= len(b) {
		return len(b)
	}

	return runeStartAtOrBefore(b, limit)
}

// runeStartAtOrBefore returns i if b[i] starts a code point, or the index
// of the closest preceding byte which does.
func runeStartAtOrBefore[T text](b T, i int) int {
	for i > 0 && !utf8.RuneStart(b[i]) {
		i--
	}

	return i
}

// validPrefix returns the length of the longest prefix of s which is valid
// UTF-8.
func validPrefix(s string) int {
	if utf8.ValidString(s) {
		return len(s)
	}

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		i += size
	}

	return i
}
