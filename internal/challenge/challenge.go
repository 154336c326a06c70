// Package challenge embeds the reference challenge instance and runs
// its two pipelines: recovering the plaintext from the ciphertext
// chain, and checking a candidate answer the way the challenge binary
// did.
package challenge

import (
	"fmt"

	"mixtea-solver/internal/alphabet"
	"mixtea-solver/internal/chain"
	"mixtea-solver/internal/crypto"
)

// Instance is one retargetable challenge: everything the pipelines
// need, with no hidden globals.
type Instance struct {
	Key        crypto.Key
	Ciphertext []uint64
	Rounds     int
	Table      alphabet.Table
}

// Reference returns the instance shipped in the challenge binary:
// seven chained 40-bit words under a fixed 4-word key, 32 rounds,
// MIX character set.
func Reference() Instance {
	return Instance{
		Key: crypto.Key{0x0c1d00050f, 0x01000137, 0x0400022f, 0x65000027},
		Ciphertext: []uint64{
			0x000000058b0e5eda,
			0x000000f48afab6bb,
			0x000000f47bfb8cbf,
			0x0000005fb0c2b766,
			0x0000008a6528f759,
			0x0000007acea379b5,
			0x000000c0850d08ce,
		},
		Rounds: 32,
		Table:  alphabet.MIX,
	}
}

// Banner text printed by the challenge binary, already decoded from
// its character set. Two 40-character board lines.
var Welcome = [2]string{
	"EXPL0RE 1960S' PAST 1N 4 PRESENT W0RLD  ",
	"WHAT DID YOU UNCOVER, ELITE RUSTACEAN >>",
}

const (
	Right = "NOW MARCH BEYOND, AND REVIVE THE LEGACY."
	Wrong = "THAT IS NOT CORRECT. TRY AGAIN :D"
)

// Solve decrypts the ciphertext chain and renders it. Pure; repeated
// calls return the same string.
func (in Instance) Solve() string {
	plain := chain.Decrypt(in.Ciphertext, in.Key, in.Rounds)
	return in.Table.Render(plain)
}

// AnswerLen returns the expected answer length in characters: five per
// ciphertext word.
func (in Instance) AnswerLen() int {
	return len(in.Ciphertext) * 5
}

// Check encodes answer, runs the forward chained transform over it,
// and compares against the ciphertext word for word. Malformed input
// (wrong length, characters outside the table) is an error, not a
// mismatch.
func (in Instance) Check(answer string) (bool, error) {
	if n := len([]rune(answer)); n != in.AnswerLen() {
		return false, fmt.Errorf("challenge: answer must be %d characters, got %d", in.AnswerLen(), n)
	}

	words, err := in.Table.Encode(answer)
	if err != nil {
		return false, err
	}

	enc := chain.Encrypt(words, in.Key, in.Rounds)
	for i := range enc {
		if enc[i] != in.Ciphertext[i] {
			return false, nil
		}
	}
	return true, nil
}
