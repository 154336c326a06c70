// Package config retargets the solver to a different ciphertext/key
// pair from a JSON file, without code changes. Fields left out of the
// file keep the reference instance's values.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"mixtea-solver/internal/alphabet"
	"mixtea-solver/internal/challenge"
)

// Config mirrors the challenge's constants surface.
type Config struct {
	Key        []uint64 `json:"key"`
	Ciphertext []uint64 `json:"ciphertext"`
	Rounds     int      `json:"rounds"`
	Alphabet   string   `json:"alphabet"`
}

// Load reads a JSON fixture file and returns the instance it
// describes, with reference defaults filled in for absent fields.
func Load(path string) (challenge.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return challenge.Instance{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return challenge.Instance{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	in, err := cfg.Resolve()
	if err != nil {
		return challenge.Instance{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return in, nil
}

// Resolve validates the config and fills empty fields from the
// reference instance.
func (c Config) Resolve() (challenge.Instance, error) {
	in := challenge.Reference()

	if c.Key != nil {
		if len(c.Key) != len(in.Key) {
			return challenge.Instance{}, fmt.Errorf("key must have exactly %d words, got %d", len(in.Key), len(c.Key))
		}
		copy(in.Key[:], c.Key)
	}

	if c.Ciphertext != nil {
		if len(c.Ciphertext) == 0 {
			return challenge.Instance{}, fmt.Errorf("ciphertext must not be empty")
		}
		in.Ciphertext = c.Ciphertext
	}

	if c.Rounds != 0 {
		if c.Rounds < 0 {
			return challenge.Instance{}, fmt.Errorf("rounds must be non-negative, got %d", c.Rounds)
		}
		in.Rounds = c.Rounds
	}

	if c.Alphabet != "" {
		in.Table = alphabet.Table([]rune(c.Alphabet))
	}

	return in, nil
}
