package benchsuite

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dimonomid/rocstr/rocstr"
	"github.com/dimonomid/rocstr/util/textgen"
)

// Group is an operation which the strategies are compared on.
type Group string

const (
	// GroupClone copies an existing value.
	GroupClone Group = "clone"
	// GroupFromStr builds a value from a Go string.
	GroupFromStr Group = "from_str"
	// GroupConcat joins the two halves of the sample.
	GroupConcat Group = "concat"
	// GroupFromInt formats an int64 with as many digits as the sample size.
	GroupFromInt Group = "from_int"
)

var validGroups = map[Group]struct{}{
	GroupClone:   {},
	GroupFromStr: {},
	GroupConcat:  {},
	GroupFromInt: {},
}

func groupNames() []string {
	ret := make([]string, 0, len(validGroups))
	for g := range validGroups {
		ret = append(ret, string(g))
	}

	sort.Strings(ret)
	return ret
}

// maxIntDigits is the number of digits of math.MaxInt64.
const maxIntDigits = 19

// Sample is the input of a single benchmark case.
type Sample struct {
	Size int

	Text        string
	Left, Right string

	// Int has Size digits, if Size is from 1 to maxIntDigits.
	Int int64
}

func NewSample(seed int64, size int) Sample {
	text := textgen.Generate(textgen.Params{Seed: seed + int64(size), Size: size})

	// Split in the middle, on a code point boundary, so both halves are
	// valid text.
	mid := len(text) / 2
	for mid > 0 && !utf8.RuneStart(text[mid]) {
		mid--
	}

	ret := Sample{
		Size:  size,
		Text:  text,
		Left:  text[:mid],
		Right: text[mid:],
	}

	if size >= 1 && size <= maxIntDigits {
		ret.Int, _ = strconv.ParseInt("1234567890123456789"[:size], 10, 64)
	}

	return ret
}

// Strategy is one way of doing the operation of a group.
type Strategy struct {
	Group Group
	Name  string

	// Capacity is the largest sample the strategy can hold, in bytes; 0
	// means unbounded.
	Capacity int

	bench func(s Sample) func(b *testing.B)
}

// Fits reports whether the strategy can hold the sample without
// truncation.
func (st Strategy) Fits(s Sample) bool {
	if st.Group == GroupFromInt && (s.Size < 1 || s.Size > maxIntDigits) {
		return false
	}

	return st.Capacity == 0 || s.Size <= st.Capacity
}

// Bench returns the benchmark function for the sample.
func (st Strategy) Bench(s Sample) func(b *testing.B) {
	return st.bench(s)
}

// Strategies returns every known strategy, grouped.
func Strategies() []Strategy {
	var ret []Strategy

	ret = append(ret, goStrategies()...)
	ret = append(ret, rocStrategies[[16]byte]()...)
	ret = append(ret, rocStrategies[[32]byte]()...)
	ret = append(ret, rocStrategies[[64]byte]()...)
	ret = append(ret, rocStrategies[[128]byte]()...)
	ret = append(ret, rocStrategies[[256]byte]()...)
	ret = append(ret, Strategy{
		Group: GroupFromInt, Name: "rocstr20", Capacity: 20,
		bench: func(s Sample) func(b *testing.B) {
			return func(b *testing.B) {
				out := new(rocstr.RocStr[[20]byte])
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					*out = rocstr.FromInt64(s.Int)
				}
				runtime.KeepAlive(out)
			}
		},
	})

	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Group < ret[j].Group
	})

	return ret
}

func goStrategies() []Strategy {
	return []Strategy{
		{
			Group: GroupClone, Name: "string",
			bench: func(s Sample) func(b *testing.B) {
				return benchString(func() string { return strings.Clone(s.Text) })
			},
		},
		{
			Group: GroupClone, Name: "bytes",
			bench: func(s Sample) func(b *testing.B) {
				src := []byte(s.Text)
				return benchBytes(func() []byte { return append([]byte(nil), src...) })
			},
		},
		{
			Group: GroupFromStr, Name: "bytes",
			bench: func(s Sample) func(b *testing.B) {
				return benchBytes(func() []byte { return []byte(s.Text) })
			},
		},
		{
			Group: GroupFromStr, Name: "builder",
			bench: func(s Sample) func(b *testing.B) {
				return benchString(func() string {
					var sb strings.Builder
					sb.WriteString(s.Text)
					return sb.String()
				})
			},
		},
		{
			Group: GroupConcat, Name: "string",
			bench: func(s Sample) func(b *testing.B) {
				return benchString(func() string { return s.Left + s.Right })
			},
		},
		{
			Group: GroupConcat, Name: "bytes",
			bench: func(s Sample) func(b *testing.B) {
				left := []byte(s.Left)
				return benchBytes(func() []byte {
					return append(left[:len(left):len(left)], s.Right...)
				})
			},
		},
		{
			Group: GroupConcat, Name: "builder",
			bench: func(s Sample) func(b *testing.B) {
				return benchString(func() string {
					var sb strings.Builder
					sb.WriteString(s.Left)
					sb.WriteString(s.Right)
					return sb.String()
				})
			},
		},
		{
			Group: GroupFromInt, Name: "string",
			bench: func(s Sample) func(b *testing.B) {
				return benchString(func() string { return strconv.FormatInt(s.Int, 10) })
			},
		},
		{
			Group: GroupFromInt, Name: "bytes",
			bench: func(s Sample) func(b *testing.B) {
				return benchBytes(func() []byte { return strconv.AppendInt(nil, s.Int, 10) })
			},
		},
	}
}

func rocStrategies[B rocstr.Buffer]() []Strategy {
	capacity := len(*new(B))
	name := fmt.Sprintf("rocstr%d", capacity)

	return []Strategy{
		{
			Group: GroupClone, Name: name, Capacity: capacity,
			bench: func(s Sample) func(b *testing.B) {
				v := rocstr.From[B](s.Text)
				return benchRocStr(func() rocstr.RocStr[B] { return v })
			},
		},
		{
			Group: GroupFromStr, Name: name, Capacity: capacity,
			bench: func(s Sample) func(b *testing.B) {
				return benchRocStr(func() rocstr.RocStr[B] { return rocstr.From[B](s.Text) })
			},
		},
		{
			Group: GroupConcat, Name: name, Capacity: capacity,
			bench: func(s Sample) func(b *testing.B) {
				left := rocstr.From[B](s.Left)
				return benchRocStr(func() rocstr.RocStr[B] { return left.Add(s.Right) })
			},
		},
	}
}

// The results go to escaping variables, so the compiler can't drop the
// measured work.

func benchString(f func() string) func(b *testing.B) {
	return func(b *testing.B) {
		out := new(string)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			*out = f()
		}
		runtime.KeepAlive(out)
	}
}

func benchBytes(f func() []byte) func(b *testing.B) {
	return func(b *testing.B) {
		out := new([]byte)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			*out = f()
		}
		runtime.KeepAlive(out)
	}
}

func benchRocStr[B rocstr.Buffer](f func() rocstr.RocStr[B]) func(b *testing.B) {
	return func(b *testing.B) {
		out := new(rocstr.RocStr[B])
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			*out = f()
		}
		runtime.KeepAlive(out)
	}
}
