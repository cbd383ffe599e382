// Package textgen generates deterministic UTF-8 sample text mixing 1, 2, 3
// and 4 byte code points, for benchmarks and property tests.
package textgen

import (
	"math/rand"
	"strings"
)

// DefaultWords mixes scripts so that every UTF-8 sequence length shows up.
var DefaultWords = []string{
	"Löwe", "老虎", "Léopard", "Gepardi", "tiger", "ƒoo", "🐅", "kočka",
	"γάτα", "кошка", "猫", "𝒞at", "gato", "Käfer", "日本語", "naïve",
	"œuvre", "😀", "ñandú", "ß", "İstanbul", "ﬁle", "Ωmega", "€uro",
}

// fillers pad the end of the text, one byte at a time.
const fillers = "abcdefghijklmnopqrstuvwxyz"

type Params struct {
	// Seed makes the output reproducible.
	Seed int64

	// Size is the exact byte length of the text.
	Size int

	// Words to draw from; DefaultWords if empty.
	Words []string
}

// Generate returns Size bytes of valid UTF-8 text: random words separated
// by spaces, padded with ASCII letters once no more words fit.
func Generate(params Params) string {
	return generate(rand.New(rand.NewSource(params.Seed)), params)
}

func generate(rnd *rand.Rand, params Params) string {
	words := params.Words
	if len(words) == 0 {
		words = DefaultWords
	}

	var sb strings.Builder
	sb.Grow(params.Size)

	for {
		word := randomElement(rnd, words)
		if sb.Len() > 0 {
			word = " " + word
		}

		if sb.Len()+len(word) > params.Size {
			break
		}

		sb.WriteString(word)
	}

	for sb.Len() < params.Size {
		sb.WriteByte(fillers[rnd.Intn(len(fillers))])
	}

	return sb.String()
}

// Corpus returns count texts of random sizes from 0 to maxSize inclusive.
func Corpus(seed int64, count, maxSize int) []string {
	rnd := rand.New(rand.NewSource(seed))

	ret := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ret = append(ret, generate(rnd, Params{Size: rnd.Intn(maxSize + 1)}))
	}

	return ret
}

func randomElement(rnd *rand.Rand, list []string) string {
	return list[rnd.Intn(len(list))]
}
