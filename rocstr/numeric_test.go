package rocstr

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"
)

type numericTC struct {
	got  string
	want string
	cap  int
}

func TestFromIntegers(t *testing.T) {
	testCases := []numericTC{
		numericTC{got: FromUint8(0).String(), want: "0", cap: 3},
		numericTC{got: FromUint8(42).String(), want: "42", cap: 3},
		numericTC{got: FromUint8(math.MaxUint8).String(), want: "255", cap: 3},

		numericTC{got: FromUint16(0).String(), want: "0", cap: 5},
		numericTC{got: FromUint16(math.MaxUint16).String(), want: "65535", cap: 5},

		numericTC{got: FromUint32(0).String(), want: "0", cap: 10},
		numericTC{got: FromUint32(math.MaxUint32).String(), want: "4294967295", cap: 10},

		numericTC{got: FromUint64(0).String(), want: "0", cap: 20},
		numericTC{got: FromUint64(math.MaxUint64).String(), want: "18446744073709551615", cap: 20},
		numericTC{got: FromUint(^uint(0)).String(), want: strconv.FormatUint(uint64(^uint(0)), 10), cap: 20},

		numericTC{got: FromUint128(uint128.Zero).String(), want: "0", cap: 39},
		numericTC{got: FromUint128(uint128.From64(42)).String(), want: "42", cap: 39},
		numericTC{got: FromUint128(uint128.Max).String(), want: "340282366920938463463374607431768211455", cap: 39},

		numericTC{got: FromInt8(0).String(), want: "0", cap: 4},
		numericTC{got: FromInt8(-42).String(), want: "-42", cap: 4},
		numericTC{got: FromInt8(math.MaxInt8).String(), want: "127", cap: 4},
		numericTC{got: FromInt8(math.MinInt8).String(), want: "-128", cap: 4},
		numericTC{got: FromInt8(-1).String(), want: "-1", cap: 4},

		numericTC{got: FromInt16(0).String(), want: "0", cap: 6},
		numericTC{got: FromInt16(math.MaxInt16).String(), want: "32767", cap: 6},
		numericTC{got: FromInt16(math.MinInt16).String(), want: "-32768", cap: 6},

		numericTC{got: FromInt32(0).String(), want: "0", cap: 11},
		numericTC{got: FromInt32(math.MaxInt32).String(), want: "2147483647", cap: 11},
		numericTC{got: FromInt32(math.MinInt32).String(), want: "-2147483648", cap: 11},

		numericTC{got: FromInt64(0).String(), want: "0", cap: 20},
		numericTC{got: FromInt64(math.MaxInt64).String(), want: "9223372036854775807", cap: 20},
		numericTC{got: FromInt64(math.MinInt64).String(), want: "-9223372036854775808", cap: 20},
		numericTC{got: FromInt(-1234567).String(), want: "-1234567", cap: 20},

		numericTC{got: FromInt128(Int128{}).String(), want: "0", cap: 40},
		numericTC{got: FromInt128(Int128From64(-42)).String(), want: "-42", cap: 40},
		numericTC{got: FromInt128(MaxInt128).String(), want: "170141183460469231731687303715884105727", cap: 40},
		numericTC{got: FromInt128(MinInt128).String(), want: "-170141183460469231731687303715884105728", cap: 40},
		numericTC{got: FromInt128(MinInt128.Neg()).String(), want: "-170141183460469231731687303715884105728", cap: 40},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.want, tc.got, "testCase %d", i)
		assert.LessOrEqual(t, len(tc.got), tc.cap, "testCase %d", i)
	}
}

func TestCapacities(t *testing.T) {
	assert.Equal(t, 3, FromUint8(0).Cap())
	assert.Equal(t, 5, FromUint16(0).Cap())
	assert.Equal(t, 10, FromUint32(0).Cap())
	assert.Equal(t, 20, FromUint64(0).Cap())
	assert.Equal(t, 20, FromUint(0).Cap())
	assert.Equal(t, 39, FromUint128(uint128.Zero).Cap())
	assert.Equal(t, 4, FromInt8(0).Cap())
	assert.Equal(t, 6, FromInt16(0).Cap())
	assert.Equal(t, 11, FromInt32(0).Cap())
	assert.Equal(t, 20, FromInt64(0).Cap())
	assert.Equal(t, 20, FromInt(0).Cap())
	assert.Equal(t, 40, FromInt128(Int128{}).Cap())
}

func TestSmallIntegersExhaustive(t *testing.T) {
	for v := 0; v <= math.MaxUint8; v++ {
		assert.Equal(t, strconv.Itoa(v), FromUint8(uint8(v)).String())
	}

	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		assert.Equal(t, strconv.Itoa(v), FromInt8(int8(v)).String())
	}

	for v := 0; v <= math.MaxUint16; v++ {
		if got := FromUint16(uint16(v)).String(); got != strconv.Itoa(v) {
			t.Fatalf("FromUint16(%d) = %q", v, got)
		}
	}

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		if got := FromInt16(int16(v)).String(); got != strconv.Itoa(v) {
			t.Fatalf("FromInt16(%d) = %q", v, got)
		}
	}
}

func TestIntegersRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))

	for i := 0; i < 10000; i++ {
		u := rnd.Uint64()
		i64 := int64(u)

		got, err := strconv.ParseUint(FromUint64(u).String(), 10, 64)
		assert.NoError(t, err)
		assert.Equal(t, u, got)

		gotInt, err := strconv.ParseInt(FromInt64(i64).String(), 10, 64)
		assert.NoError(t, err)
		assert.Equal(t, i64, gotInt)

		assert.Equal(t, strconv.FormatInt(int64(int32(u)), 10), FromInt32(int32(u)).String())
		assert.Equal(t, strconv.FormatUint(uint64(uint32(u)), 10), FromUint32(uint32(u)).String())

		u128 := uint128.New(u, rnd.Uint64())
		assert.Equal(t, u128.Big().String(), FromUint128(u128).String())

		i128 := Int128{Hi: int64(rnd.Uint64()), Lo: u}
		assert.Equal(t, bigOf(i128).String(), FromInt128(i128).String())
	}
}

// bigOf converts v for comparison: Hi * 2^64 + Lo.
func bigOf(v Int128) *big.Int {
	ret := big.NewInt(v.Hi)
	ret.Lsh(ret, 64)
	return ret.Add(ret, new(big.Int).SetUint64(v.Lo))
}

func TestInt128(t *testing.T) {
	minusOne := Int128From64(-1)
	assert.Equal(t, Int128{Hi: -1, Lo: math.MaxUint64}, minusOne)
	assert.True(t, minusOne.IsNeg())
	assert.False(t, minusOne.IsZero())
	assert.True(t, Int128{}.IsZero())

	assert.Equal(t, Int128From64(1), minusOne.Neg())
	assert.Equal(t, Int128From64(math.MinInt64).Neg(), Int128{Hi: 0, Lo: 1 << 63})
	assert.Equal(t, MinInt128, MinInt128.Neg())
	assert.Equal(t, MaxInt128.Neg(), Int128{Hi: math.MinInt64, Lo: 1})

	assert.Equal(t, -1, minusOne.Cmp(Int128{}))
	assert.Equal(t, 1, Int128From64(1).Cmp(minusOne))
	assert.Equal(t, 0, MaxInt128.Cmp(MaxInt128))
	assert.Equal(t, -1, MinInt128.Cmp(MaxInt128))
	assert.Equal(t, -1, Int128{Lo: 1}.Cmp(Int128{Lo: 2}))

	assert.Equal(t, "-1", minusOne.String())
	assert.Equal(t, "18446744073709551616", Int128{Hi: 1}.String())
}
