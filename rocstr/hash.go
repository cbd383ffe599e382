package rocstr

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// hashSentinel ends the hashed bytes. 0xFF never occurs in UTF-8, so the
// stream for one value is never a prefix of the stream for another one.
var hashSentinel = []byte{0xff}

// WriteHash feeds the contents followed by a 0xFF terminator to h, which is
// typically a hash.Hash or a *maphash.Hash. Equal contents give equal
// streams regardless of the capacity.
func (s RocStr[B]) WriteHash(h io.Writer) {
	h.Write(s.Bytes())
	h.Write(hashSentinel)
}

// Sum64 returns the xxHash64 of the stream written by WriteHash.
func (s RocStr[B]) Sum64() uint64 {
	d := xxhash.New()
	s.WriteHash(d)
	return d.Sum64()
}
