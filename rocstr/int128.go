package rocstr

import (
	"math"
	"math/bits"

	"lukechampine.com/uint128"
)

// Int128 is a two's complement signed 128-bit integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	MinInt128 = Int128{Hi: math.MinInt64, Lo: 0}
	MaxInt128 = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
)

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}

	return Int128{Hi: hi, Lo: uint64(v)}
}

func (v Int128) IsNeg() bool {
	return v.Hi < 0
}

func (v Int128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Neg returns -v. Like for the builtin types, -MinInt128 is MinInt128.
func (v Int128) Neg() Int128 {
	lo, borrow := bits.Sub64(0, v.Lo, 0)
	hi, _ := bits.Sub64(0, uint64(v.Hi), borrow)

	return Int128{Hi: int64(hi), Lo: lo}
}

// Cmp returns -1, 0 or +1 depending on whether v is less than, equal to or
// greater than w.
func (v Int128) Cmp(w Int128) int {
	switch {
	case v.Hi < w.Hi:
		return -1
	case v.Hi > w.Hi:
		return 1
	case v.Lo < w.Lo:
		return -1
	case v.Lo > w.Lo:
		return 1
	}

	return 0
}

// magnitude returns |v| as an unsigned value; v must not be MinInt128.
func (v Int128) magnitude() uint128.Uint128 {
	if v.IsNeg() {
		v = v.Neg()
	}

	return uint128.New(v.Lo, uint64(v.Hi))
}

func (v Int128) String() string {
	return FromInt128(v).String()
}
