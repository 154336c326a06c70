package crypto

import (
	"math/rand"
	"testing"
)

var refKey = Key{0x0c1d00050f, 0x01000137, 0x0400022f, 0x65000027}

var vectors = []struct {
	rounds int
	key    Key
	plain  Block
	cipher Block
}{
	{32, refKey, Block{0, 0}, Block{0x2443e1429d, 0x61c6d19fa4}},
	{32, refKey, Block{1, 2}, Block{0x6a610f59ae, 0x86e32852df}},
	{32, refKey, Block{0xdeadbeef, 0xcafebabe}, Block{0x42b7d93f96, 0x73475a85f3}},
	// second word exceeds 40 bits; only its low 40 bits round-trip
	{32, refKey, Block{0x123456789a, 0xfffffffffff}, Block{0xcde6149015, 0x1542a65a7a}},
	{7, Key{1, 2, 3, 4}, Block{0x1122334455, 0x66778899aa}, Block{0xbc160162c3, 0x9abd92bdb1}},
}

func TestEncipherVectors(t *testing.T) {
	for i, v := range vectors {
		got := Encipher(v.rounds, v.plain, v.key)
		if got != v.cipher {
			t.Errorf("vector %d: got {%010x %010x}, want {%010x %010x}",
				i, got.V0, got.V1, v.cipher.V0, v.cipher.V1)
		}
	}
}

func TestDecipherVectors(t *testing.T) {
	for i, v := range vectors {
		want := Block{v.plain.V0 & word40, v.plain.V1 & word40}
		got := Decipher(v.rounds, v.cipher, v.key)
		if got != want {
			t.Errorf("vector %d: got {%010x %010x}, want {%010x %010x}",
				i, got.V0, got.V1, want.V0, want.V1)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, rounds := range []int{0, 1, 2, 7, 31, 32, 33, 64} {
		for i := 0; i < 100; i++ {
			b := Block{rng.Uint64(), rng.Uint64()}
			k := Key{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}
			want := Block{b.V0 & word40, b.V1 & word40}
			got := Decipher(rounds, Encipher(rounds, b, k), k)
			if got != want {
				t.Fatalf("rounds=%d block={%x %x}: got {%010x %010x}, want {%010x %010x}",
					rounds, b.V0, b.V1, got.V0, got.V1, want.V0, want.V1)
			}
		}
	}
}

func TestZeroRounds(t *testing.T) {
	b := Block{0xfedcba9876543210, 0x0123456789abcdef}
	want := Block{b.V0 & word40, b.V1 & word40}
	if got := Encipher(0, b, refKey); got != want {
		t.Errorf("Encipher(0): got {%010x %010x}, want {%010x %010x}", got.V0, got.V1, want.V0, want.V1)
	}
	if got := Decipher(0, b, refKey); got != want {
		t.Errorf("Decipher(0): got {%010x %010x}, want {%010x %010x}", got.V0, got.V1, want.V0, want.V1)
	}
}
