package benchsuite

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNewSample(t *testing.T) {
	for _, size := range []int{0, 1, 2, 7, 19, 20, 64, 256} {
		s := NewSample(1, size)

		assert.Equal(t, size, s.Size)
		assert.Equal(t, size, len(s.Text))
		assert.Equal(t, s.Text, s.Left+s.Right)
		assert.True(t, utf8.ValidString(s.Left), "%d", size)
		assert.True(t, utf8.ValidString(s.Right), "%d", size)

		if size >= 1 && size <= 19 {
			assert.Equal(t, size, len(fmt.Sprint(s.Int)))
		} else {
			assert.Equal(t, int64(0), s.Int)
		}
	}

	assert.Equal(t, NewSample(3, 32), NewSample(3, 32))
}

func TestStrategies(t *testing.T) {
	seen := map[string]bool{}
	for _, st := range Strategies() {
		key := string(st.Group) + "/" + st.Name
		assert.False(t, seen[key], key)
		seen[key] = true

		_, ok := validGroups[st.Group]
		assert.True(t, ok, key)
	}

	for _, key := range []string{
		"clone/string", "clone/bytes", "clone/rocstr16", "clone/rocstr256",
		"from_str/builder", "from_str/rocstr64",
		"concat/string", "concat/builder", "concat/rocstr128",
		"from_int/string", "from_int/rocstr20",
	} {
		assert.True(t, seen[key], key)
	}
}

type fitsTC struct {
	group    Group
	capacity int
	size     int
	want     bool
}

func TestFits(t *testing.T) {
	testCases := []fitsTC{
		fitsTC{group: GroupClone, capacity: 0, size: 4096, want: true},
		fitsTC{group: GroupClone, capacity: 16, size: 16, want: true},
		fitsTC{group: GroupClone, capacity: 16, size: 17, want: false},
		fitsTC{group: GroupConcat, capacity: 64, size: 0, want: true},
		fitsTC{group: GroupFromInt, capacity: 20, size: 19, want: true},
		fitsTC{group: GroupFromInt, capacity: 20, size: 20, want: false},
		fitsTC{group: GroupFromInt, capacity: 0, size: 0, want: false},
	}

	for i, tc := range testCases {
		st := Strategy{Group: tc.group, Capacity: tc.capacity}
		assert.Equal(t, tc.want, st.Fits(NewSample(1, tc.size)), "testCase %d", i)
	}
}
