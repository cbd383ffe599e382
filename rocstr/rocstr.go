// Package rocstr implements RocStr, an immutable fixed capacity string which
// lives entirely in a byte array, so copying one is a plain value copy.
//
// The capacity is the length of the backing array, given as the type
// argument:
//
//	name := rocstr.From[[64]byte]("Alice")
//	full := name.Add(" ").Add("Adams")
//
// Text which doesn't fit is silently truncated, always on a code point
// boundary, so a RocStr is valid UTF-8 at all times. Callers which want an
// error instead use TryFrom / TryAdd, which return ErrInsufficientCapacity.
package rocstr

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/juju/errors"
)

// RocStr is a string of at most len(B) bytes. The zero value is the empty
// string.
//
// Bytes past the length are always zero, so two RocStr of the same
// capacity are == iff their contents are equal, and RocStr can be used as a
// map key.
type RocStr[B Buffer] struct {
	inner B
	len   uint32
}

// From returns a RocStr holding s, silently truncated to the capacity.
//
// Truncation never splits a code point. A Go string is not guaranteed to be
// valid UTF-8; if s isn't, the result stops right before the first invalid
// sequence.
func From[B Buffer](s string) RocStr[B] {
	var ret RocStr[B]
	buf := bytesOf(&ret.inner)

	n := extractWithin(s, len(buf))
	n = validPrefix(s[:n])

	copy(buf, s[:n])
	ret.len = uint32(n)

	return ret
}

// FromBytes is like From, but b must be valid UTF-8: otherwise a NotValid
// error is returned. This is what decoders use for external data.
func FromBytes[B Buffer](b []byte) (RocStr[B], error) {
	var ret RocStr[B]

	if !utf8.Valid(b) {
		return ret, errors.NotValidf("UTF-8 text %q", b)
	}

	buf := bytesOf(&ret.inner)
	n := extractWithin(b, len(buf))

	copy(buf, b[:n])
	ret.len = uint32(n)

	return ret, nil
}

// TryFrom is like From, but returns ErrInsufficientCapacity instead of
// truncating, and a NotValid error if s isn't valid UTF-8.
func TryFrom[B Buffer](s string) (RocStr[B], error) {
	var ret RocStr[B]
	if len(s) > len(ret.inner) {
		return ret, ErrInsufficientCapacity
	}

	if !utf8.ValidString(s) {
		return ret, errors.NotValidf("UTF-8 text %q", s)
	}

	return From[B](s), nil
}

// Empty returns the empty RocStr; same as the zero value.
func Empty[B Buffer]() RocStr[B] {
	return RocStr[B]{}
}

// Bytes returns the contents without copying. The slice aliases s and must
// not be modified.
func (s *RocStr[B]) Bytes() []byte {
	return bytesOf(&s.inner)[:s.len]
}

// AppendTo appends the contents to dst.
func (s RocStr[B]) AppendTo(dst []byte) []byte {
	return append(dst, s.Bytes()...)
}

// String returns the contents as a Go string.
func (s RocStr[B]) String() string {
	return string(s.Bytes())
}

// GoString implements fmt.GoStringer, so %#v shows the stored length too.
func (s RocStr[B]) GoString() string {
	return fmt.Sprintf("rocstr.RocStr[%d]{%s, len: %d}", s.Cap(), strconv.Quote(s.String()), s.len)
}

// Len returns the length in bytes; not in runes, and not in graphemes.
func (s RocStr[B]) Len() int {
	return int(s.len)
}

// Cap returns the capacity in bytes.
func (s RocStr[B]) Cap() int {
	return len(s.inner)
}

func (s RocStr[B]) IsEmpty() bool {
	return s.len == 0
}

// StartsWith reports whether s begins with prefix.
func (s RocStr[B]) StartsWith(prefix string) bool {
	live := s.Bytes()
	return len(live) >= len(prefix) && string(live[:len(prefix)]) == prefix
}

// Equal reports whether s holds exactly t.
func (s RocStr[B]) Equal(t string) bool {
	return int(s.len) == len(t) && string(s.Bytes()) == t
}

// Equal reports whether a and b hold the same text. Capacities may differ
// and are not compared.
func Equal[A, B Buffer](a RocStr[A], b RocStr[B]) bool {
	return a.len == b.len && bytes.Equal(a.Bytes(), b.Bytes())
}

// Compare orders a and b bytewise, like strings.Compare.
func Compare[A, B Buffer](a RocStr[A], b RocStr[B]) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// with returns a RocStr holding b, which must already be valid UTF-8 and fit
// the capacity.
func with[B Buffer](b []byte) RocStr[B] {
	var ret RocStr[B]
	ret.len = uint32(copy(bytesOf(&ret.inner), b))
	return ret
}
