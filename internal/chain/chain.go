// Package chain applies the block transform across a chained word
// sequence. Adjacent words overlap: the block at position i spans
// words i and i+1, so each step rewrites two words and positions
// share state with their neighbors.
package chain

import "mixtea-solver/internal/crypto"

// Decrypt returns the decrypted copy of words. Positions are processed
// strictly from len-2 down to 0: block i can only be undone after
// block i+1 has restored the shared word i+1. Ascending order produces
// garbage with no error signal. The final word is never the left half
// of a pair and reaches the output untouched.
//
// Chains shorter than two words have nothing to decrypt and are
// returned as-is.
func Decrypt(words []uint64, k crypto.Key, rounds int) []uint64 {
	out := make([]uint64, len(words))
	copy(out, words)

	for i := len(out) - 2; i >= 0; i-- {
		b := crypto.Decipher(rounds, crypto.Block{V0: out[i], V1: out[i+1]}, k)
		out[i], out[i+1] = b.V0, b.V1
	}
	return out
}

// Encrypt is the inverse of Decrypt: the same pairwise walk in
// ascending order. Encrypt(Decrypt(c)) == c for words already in the
// 40-bit range.
func Encrypt(words []uint64, k crypto.Key, rounds int) []uint64 {
	out := make([]uint64, len(words))
	copy(out, words)

	for i := 0; i <= len(out)-2; i++ {
		b := crypto.Encipher(rounds, crypto.Block{V0: out[i], V1: out[i+1]}, k)
		out[i], out[i+1] = b.V0, b.V1
	}
	return out
}
