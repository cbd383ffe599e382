package rocstr

import "unicode/utf8"

// Replace returns a copy of s with all non-overlapping occurrences of from
// replaced by to, scanning left to right. An empty or malformed from returns
// s as is; to is cut before its first invalid UTF-8 sequence, like in Add.
// Matches only start on code point boundaries.
//
// If the result would overflow the capacity, it's cut at the capacity, on a
// code point boundary:
//
//	s := rocstr.From[[16]byte]("this is old")
//	s.Replace("old", "new")                  // "this is new"
//	s.Replace("is", "an")                    // "than an old"
//	s.Replace("old", "obvously overflowing") // "this is obvously"
func (s RocStr[B]) Replace(from, to string) RocStr[B] {
	if from == "" || !utf8.ValidString(from) {
		return s
	}

	to = to[:validPrefix(to)]

	var ret RocStr[B]
	w := boundedWriter{buf: bytesOf(&ret.inner)}
	in := s.Bytes()

	for i := 0; i < len(in) && !w.full; {
		if utf8.RuneStart(in[i]) && i+len(from) <= len(in) && string(in[i:i+len(from)]) == from {
			w.writeString(to)
			i += len(from)
			continue
		}

		w.writeByte(in[i])
		i++
	}

	ret.len = uint32(w.finish())

	return ret
}

// boundedWriter fills buf and stops at its end, remembering the first byte
// which didn't fit so that finish can cut on a code point boundary.
type boundedWriter struct {
	buf []byte
	n   int

	full bool
	next byte
}

func (w *boundedWriter) writeString(p string) {
	c := copy(w.buf[w.n:], p)
	w.n += c

	if c < len(p) {
		w.full = true
		w.next = p[c]
	}
}

func (w *boundedWriter) writeByte(c byte) {
	if w.n == len(w.buf) {
		w.full = true
		w.next = c
		return
	}

	w.buf[w.n] = c
	w.n++
}

// finish returns the number of bytes to keep. If the cut fell inside a code
// point, the partial code point is dropped and zeroed.
func (w *boundedWriter) finish() int {
	if w.full && w.n > 0 && !utf8.RuneStart(w.next) {
		w.n = runeStartAtOrBefore(w.buf, w.n-1)
		clear(w.buf[w.n:])
	}

	return w.n
}
