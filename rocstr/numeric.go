package rocstr

import (
	"math"

	"lukechampine.com/uint128"
)

// unsigned is every builtin unsigned integer type.
type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// signed is every builtin signed integer type.
type signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// numeral is what the decimal formatter needs from an unsigned magnitude:
// whether it's zero, and division by ten with the remainder as a digit.
type numeral[T any] interface {
	isZero() bool
	quoRem10() (T, byte)
}

// machine is a numeral over a builtin unsigned type.
type machine[T unsigned] struct {
	v T
}

func (m machine[T]) isZero() bool {
	return m.v == 0
}

func (m machine[T]) quoRem10() (machine[T], byte) {
	return machine[T]{m.v / 10}, byte(m.v % 10)
}

// wide is a numeral over 128 bits.
type wide struct {
	v uint128.Uint128
}

func (w wide) isZero() bool {
	return w.v.IsZero()
}

func (w wide) quoRem10() (wide, byte) {
	q, r := w.v.QuoRem64(10)
	return wide{q}, byte(r)
}

// format renders the magnitude m in decimal, prefixed with "-" if negative.
// The digits are produced least significant first into a scratch buffer of
// the same size as the result, and then copied.
func format[B Buffer, T numeral[T]](negative bool, m T) RocStr[B] {
	if m.isZero() {
		return zero[B]()
	}

	var scratch B
	buf := bytesOf(&scratch)
	i := len(buf)

	for !m.isZero() {
		var digit byte
		m, digit = m.quoRem10()

		i--
		buf[i] = '0' + digit
	}

	if negative {
		i--
		buf[i] = '-'
	}

	return with[B](buf[i:])
}

func zero[B Buffer]() RocStr[B] {
	return with[B]([]byte{'0'})
}

func fromUnsigned[B Buffer, T unsigned](v T) RocStr[B] {
	return format[B](false, machine[T]{v})
}

// fromSigned formats v, which must not be the minimum of its type: that one
// can't be negated, and callers use a precomputed literal instead.
func fromSigned[B Buffer, T signed](v T) RocStr[B] {
	if v < 0 {
		return format[B](true, machine[uint64]{uint64(-v)})
	}

	return format[B](false, machine[uint64]{uint64(v)})
}

// The minimum of each signed type, whose magnitude doesn't fit the type.
var (
	minInt8Str   = From[[4]byte]("-128")
	minInt16Str  = From[[6]byte]("-32768")
	minInt32Str  = From[[11]byte]("-2147483648")
	minInt64Str  = From[[20]byte]("-9223372036854775808")
	minInt128Str = From[[40]byte]("-170141183460469231731687303715884105728")
)

// FromUint8 formats v in decimal; the capacity fits "255".
func FromUint8(v uint8) RocStr[[3]byte] {
	return fromUnsigned[[3]byte](v)
}

func FromUint16(v uint16) RocStr[[5]byte] {
	return fromUnsigned[[5]byte](v)
}

func FromUint32(v uint32) RocStr[[10]byte] {
	return fromUnsigned[[10]byte](v)
}

func FromUint64(v uint64) RocStr[[20]byte] {
	return fromUnsigned[[20]byte](v)
}

// FromUint formats v in decimal. The capacity fits any 64-bit uint.
func FromUint(v uint) RocStr[[20]byte] {
	return fromUnsigned[[20]byte](v)
}

// FromUint128 formats v in decimal; the capacity fits
// "340282366920938463463374607431768211455".
func FromUint128(v uint128.Uint128) RocStr[[39]byte] {
	return format[[39]byte](false, wide{v})
}

// FromInt8 formats v in decimal; the capacity fits "-128".
func FromInt8(v int8) RocStr[[4]byte] {
	if v == math.MinInt8 {
		return minInt8Str
	}

	return fromSigned[[4]byte](v)
}

func FromInt16(v int16) RocStr[[6]byte] {
	if v == math.MinInt16 {
		return minInt16Str
	}

	return fromSigned[[6]byte](v)
}

func FromInt32(v int32) RocStr[[11]byte] {
	if v == math.MinInt32 {
		return minInt32Str
	}

	return fromSigned[[11]byte](v)
}

func FromInt64(v int64) RocStr[[20]byte] {
	if v == math.MinInt64 {
		return minInt64Str
	}

	return fromSigned[[20]byte](v)
}

// FromInt formats v in decimal. The capacity fits any 64-bit int.
func FromInt(v int) RocStr[[20]byte] {
	return FromInt64(int64(v))
}

// FromInt128 formats v in decimal; the capacity fits
// "-170141183460469231731687303715884105728".
func FromInt128(v Int128) RocStr[[40]byte] {
	if v == MinInt128 {
		return minInt128Str
	}

	return format[[40]byte](v.IsNeg(), wide{v.magnitude()})
}
