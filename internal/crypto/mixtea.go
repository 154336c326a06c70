// Package crypto implements the XTEA variant used by the legacy MIX
// challenge binary. The cipher works on two 40-bit words (one MIX word
// is five 8-bit bytes) held in uint64 storage, with a 48-bit running
// sum. Matches the challenge binary's round function bit for bit.
package crypto

// Block is one two-word unit of cipher state. Both words carry 40
// significant bits; Encipher and Decipher return words with the high
// 24 bits cleared.
type Block struct {
	V0, V1 uint64
}

// Key is the fixed 4-word cipher key. Key words are selected per round
// by two bits of the running sum, not used in order.
type Key [4]uint64

// Delta is the round sum increment.
const Delta = 0x9e38538a49

const (
	word40 = 0xffffffffff   // 40-bit word mask
	sum48  = 0xffffffffffff // 48-bit running sum mask
)

// mix is the shared round function. The right shift operates on x
// truncated to 40 bits; shifting the full 64-bit value instead gives
// different outputs.
func mix(x, sum, k uint64) uint64 {
	return (((x << 4) ^ ((x & word40) >> 5)) + x) ^ (sum + k)
}

// Encipher runs the forward transform for the given number of rounds
// (32 in the reference instance). Words outside the 40-bit range are
// accepted; only their low 40 bits round-trip.
func Encipher(rounds int, b Block, k Key) Block {
	v0, v1 := b.V0, b.V1
	var sum uint64
	for i := 0; i < rounds; i++ {
		v0 += mix(v1, sum, k[sum&3])
		sum = (sum + Delta) & sum48
		v1 += mix(v0, sum, k[(sum>>11)&3])
	}
	return Block{v0 & word40, v1 & word40}
}

// Decipher is the exact algebraic inverse of Encipher.
//
// The initial sum is Delta*rounds masked to 40 bits, not 48, matching
// the challenge binary. The sum's low 40 bits evolve identically under
// either mask (borrows only move upward) and both key selection taps
// sit below bit 14, so the inverse still holds mod 2^40.
func Decipher(rounds int, b Block, k Key) Block {
	v0, v1 := b.V0, b.V1
	sum := (uint64(rounds) * Delta) & word40
	for i := 0; i < rounds; i++ {
		v1 -= mix(v0, sum, k[(sum>>11)&3])
		sum = (sum - Delta) & sum48
		v0 -= mix(v1, sum, k[sum&3])
	}
	return Block{v0 & word40, v1 & word40}
}
