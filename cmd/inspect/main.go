// inspect dumps a fixture's chain before and after decryption,
// word by word.
package main

import (
	"flag"
	"fmt"
	"os"

	"mixtea-solver/internal/chain"
	"mixtea-solver/internal/challenge"
	"mixtea-solver/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to fixture JSON (default: embedded reference)")
	flag.Parse()

	in := challenge.Reference()
	if *configFile != "" {
		var err error
		in, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	plain := chain.Decrypt(in.Ciphertext, in.Key, in.Rounds)

	fmt.Printf("Key: %#x %#x %#x %#x, Rounds: %d\n", in.Key[0], in.Key[1], in.Key[2], in.Key[3], in.Rounds)
	fmt.Printf("Words: %d\n", len(in.Ciphertext))
	for i := range in.Ciphertext {
		fmt.Printf("  [%d] %010x -> %010x  %q\n", i, in.Ciphertext[i], plain[i], in.Table.Render(plain[i:i+1]))
	}
	fmt.Printf("Text: %s\n", in.Table.Render(plain))
}
