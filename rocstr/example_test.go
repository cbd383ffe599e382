package rocstr_test

import (
	"fmt"

	"github.com/dimonomid/rocstr/rocstr"
)

func Example() {
	name := rocstr.From[[16]byte]("Löwe 老虎 ")
	full := name.Add("Léopard Gepardi")

	fmt.Println(full)
	fmt.Println(full.Len(), full.Cap())
	// Output:
	// Löwe 老虎 Lé
	// 16 16
}

func ExampleRocStr_Truncate() {
	s := rocstr.From[[32]byte]("Löwe 老虎 Léopard")

	fmt.Printf("%q\n", s.Truncate(2))
	fmt.Printf("%q\n", s.Truncate(8))
	// Output:
	// "L"
	// "Löwe "
}

func ExampleRocStr_Replace() {
	s := rocstr.From[[16]byte]("this is old")

	fmt.Println(s.Replace("old", "new"))
	fmt.Println(s.Replace("is", "an"))
	fmt.Println(s.Replace("old", "obvously overflowing"))
	// Output:
	// this is new
	// than an old
	// this is obvously
}

func ExampleTryFrom() {
	_, err := rocstr.TryFrom[[4]byte]("Léopard")
	fmt.Println(rocstr.IsInsufficientCapacity(err))
	// Output:
	// true
}

func ExampleFromInt64() {
	fmt.Println(rocstr.FromInt64(-9223372036854775808))
	fmt.Printf("%#v\n", rocstr.FromUint8(255))
	// Output:
	// -9223372036854775808
	// rocstr.RocStr[3]{"255", len: 3}
}
