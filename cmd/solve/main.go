// solve decrypts the embedded ciphertext chain and prints the
// recovered text. With no flags it behaves exactly like the original
// solver: no input, one output line, exit 0.
package main

import (
	"flag"
	"fmt"
	"os"

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

	fmt.Println(in.Solve())
}
