package rocstr

import "unsafe"

// Buffer is the set of byte arrays a RocStr can be backed by. The array
// length is the capacity of the string.
//
// Every capacity fits a 32-bit count.
type Buffer interface {
	[1]byte | [2]byte | [3]byte | [4]byte | [5]byte | [6]byte | [7]byte | [8]byte |
		[9]byte | [10]byte | [11]byte | [12]byte | [13]byte | [14]byte | [15]byte | [16]byte |
		[17]byte | [18]byte | [19]byte | [20]byte | [21]byte | [22]byte | [23]byte | [24]byte |
		[25]byte | [26]byte | [27]byte | [28]byte | [29]byte | [30]byte | [31]byte | [32]byte |
		[33]byte | [34]byte | [35]byte | [36]byte | [37]byte | [38]byte | [39]byte | [40]byte |
		[41]byte | [42]byte | [43]byte | [44]byte | [45]byte | [46]byte | [47]byte | [48]byte |
		[49]byte | [50]byte | [51]byte | [52]byte | [53]byte | [54]byte | [55]byte | [56]byte |
		[57]byte | [58]byte | [59]byte | [60]byte | [61]byte | [62]byte | [63]byte | [64]byte |
		[96]byte | [128]byte | [192]byte | [255]byte | [256]byte | [512]byte | [1024]byte | [2048]byte |
		[4096]byte
}

// Commonly used capacities.
type (
	Str8   = RocStr[[8]byte]
	Str16  = RocStr[[16]byte]
	Str32  = RocStr[[32]byte]
	Str64  = RocStr[[64]byte]
	Str128 = RocStr[[128]byte]
	Str256 = RocStr[[256]byte]
)

// bytesOf returns the whole array behind b as a slice. Arrays of different
// lengths share no slice type inside a type set, so the view goes through
// unsafe.Slice; the result aliases *b and must not outlive it.
func bytesOf[B Buffer](b *B) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(b)), len(*b))
}
