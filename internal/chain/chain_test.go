package chain

import (
	"testing"

	"mixtea-solver/internal/crypto"
)

var (
	refKey    = crypto.Key{0x0c1d00050f, 0x01000137, 0x0400022f, 0x65000027}
	refRounds = 32

	refCipher = []uint64{
		0x000000058b0e5eda,
		0x000000f48afab6bb,
		0x000000f47bfb8cbf,
		0x0000005fb0c2b766,
		0x0000008a6528f759,
		0x0000007acea379b5,
		0x000000c0850d08ce,
	}

	refPlain = []uint64{
		0x0421031706,
		0x2a17050308,
		0x2d05191e0d,
		0x190529050e,
		0x0213340321,
		0x2d11131e07,
		0x132116162b,
	}
)

func equal(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDecryptReference(t *testing.T) {
	got := Decrypt(refCipher, refKey, refRounds)
	if !equal(got, refPlain) {
		t.Errorf("got %010x, want %010x", got, refPlain)
	}
}

func TestEncryptInverts(t *testing.T) {
	got := Encrypt(refPlain, refKey, refRounds)
	if !equal(got, refCipher) {
		t.Errorf("got %010x, want %010x", got, refCipher)
	}
}

// Decrypting positions in ascending order must give a different result:
// each pair shares a word with the next, so position i depends on
// position i+1 being undone first.
func TestDescendingOrderIsLoadBearing(t *testing.T) {
	asc := make([]uint64, len(refCipher))
	copy(asc, refCipher)
	for i := 0; i <= len(asc)-2; i++ {
		b := crypto.Decipher(refRounds, crypto.Block{V0: asc[i], V1: asc[i+1]}, refKey)
		asc[i], asc[i+1] = b.V0, b.V1
	}

	if equal(asc, refPlain) {
		t.Error("ascending decryption matched the descending result")
	}
}

func TestShortChains(t *testing.T) {
	if got := Decrypt(nil, refKey, refRounds); len(got) != 0 {
		t.Errorf("nil chain: got %010x, want empty", got)
	}
	single := []uint64{0x1234567890}
	if got := Decrypt(single, refKey, refRounds); !equal(got, single) {
		t.Errorf("single word: got %010x, want %010x", got, single)
	}
}

func TestDecryptDoesNotMutateInput(t *testing.T) {
	in := make([]uint64, len(refCipher))
	copy(in, refCipher)
	Decrypt(in, refKey, refRounds)
	if !equal(in, refCipher) {
		t.Error("input slice was mutated")
	}
}
