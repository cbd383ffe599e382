package rocstr

import (
	"unicode/utf8"

	"github.com/juju/errors"
)

// Add returns s followed by t. The capacity stays the one of s: if t doesn't
// fit entirely, only the part of it which fits is appended, cut on a code
// point boundary.
func (s RocStr[B]) Add(t string) RocStr[B] {
	buf := bytesOf(&s.inner)
	avail := len(buf) - int(s.len)

	n := extractWithin(t, avail)
	n = validPrefix(t[:n])

	s.len += uint32(copy(buf[s.len:], t[:n]))

	return s
}

// TryAdd is like Add, but returns ErrInsufficientCapacity instead of
// truncating t, and a NotValid error if t isn't valid UTF-8.
func (s RocStr[B]) TryAdd(t string) (RocStr[B], error) {
	if int(s.len)+len(t) > s.Cap() {
		return s, ErrInsufficientCapacity
	}

	if !utf8.ValidString(t) {
		return s, errors.NotValidf("UTF-8 text %q", t)
	}

	return s.Add(t), nil
}

// Concat returns a followed by b, with the capacity of a. Like Add, the
// tail of b which doesn't fit is dropped.
func Concat[A, B Buffer](a RocStr[A], b RocStr[B]) RocStr[A] {
	buf := bytesOf(&a.inner)
	avail := len(buf) - int(a.len)

	right := b.Bytes()
	n := extractWithin(right, avail)

	a.len += uint32(copy(buf[a.len:], right[:n]))

	return a
}

// Reshape returns the contents of s in a RocStr of capacity len(M),
// truncated if needed.
//
//	s := rocstr.From[[16]byte]("foo bar")
//	t := rocstr.Reshape[[4]byte](s) // "foo "
func Reshape[M, B Buffer](s RocStr[B]) RocStr[M] {
	var ret RocStr[M]
	buf := bytesOf(&ret.inner)

	live := s.Bytes()
	n := extractWithin(live, len(buf))

	ret.len = uint32(copy(buf, live[:n]))

	return ret
}

// Truncate returns s shortened to at most n bytes, without splitting a code
// point. s itself is not changed.
//
// For "Löwe 老虎 Léopard", Truncate(2) is "L" and Truncate(8) is "Löwe ".
func (s RocStr[B]) Truncate(n int) RocStr[B] {
	return with[B](s.Bytes()[:extractWithin(s.Bytes(), n)])
}
