// Package alphabet implements the 56-character MIX character set used
// by the challenge binary (Knuth, TAOCP vol 1) and its word packing:
// five characters per 40-bit word, most significant byte first.
package alphabet

import (
	"fmt"
	"strings"
)

// Table maps byte values to displayable runes. Index is the byte value.
type Table []rune

// Sentinel is emitted for byte values outside the table.
const Sentinel = '?'

// MIX is the character set of the reference challenge.
var MIX = Table{
	' ', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', '\'', 'J', 'K', 'L', 'M', 'N',
	'O', 'P', 'Q', 'R', '°', '"', 'S', 'T',
	'U', 'V', 'W', 'X', 'Y', 'Z', '0', '1',
	'2', '3', '4', '5', '6', '7', '8', '9',
	'.', ',', '(', ')', '+', '-', '*', '/',
	'=', '$', '<', '>', '@', ';', ':', '‚',
}

// Rune returns the rune for byte value v, or Sentinel if v is outside
// the table. Never fails.
func (t Table) Rune(v byte) rune {
	if int(v) >= len(t) {
		return Sentinel
	}
	return t[v]
}

// Render serializes words to text in word order. Each word's 8 bytes
// are walked from most significant to least significant; zero bytes
// are skipped without emitting anything. No terminator is appended.
func (t Table) Render(words []uint64) string {
	var sb strings.Builder
	for _, w := range words {
		for j := 7; j >= 0; j-- {
			b := byte(w >> (8 * j))
			if b != 0 {
				sb.WriteRune(t.Rune(b))
			}
		}
	}
	return sb.String()
}

// Index returns the byte value for rune r, reporting whether r is in
// the table.
func (t Table) Index(r rune) (byte, bool) {
	for v, c := range t {
		if c == r {
			return byte(v), true
		}
	}
	return 0, false
}

// Encode packs s into 40-bit words, five characters per word with the
// first character in the most significant byte. The length of s must
// be a multiple of five; every rune must be in the table.
func (t Table) Encode(s string) ([]uint64, error) {
	runes := []rune(s)
	if len(runes)%5 != 0 {
		return nil, fmt.Errorf("alphabet: text length %d is not a multiple of 5", len(runes))
	}

	words := make([]uint64, len(runes)/5)
	for i, r := range runes {
		v, ok := t.Index(r)
		if !ok {
			return nil, fmt.Errorf("alphabet: character %q not in table", r)
		}
		shift := 8 * (4 - uint(i%5))
		words[i/5] |= uint64(v) << shift
	}
	return words, nil
}
