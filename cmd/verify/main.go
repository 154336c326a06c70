// verify replays the original challenge flow: print the banner, read
// an answer from stdin, encipher it over the chain, and compare
// against the embedded ciphertext.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

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

	for _, line := range challenge.Welcome {
		fmt.Println(line)
	}

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintf(os.Stderr, "Error reading answer: %v\n", err)
		os.Exit(1)
	}
	answer = strings.TrimRight(answer, "\r\n")

	ok, err := in.Check(answer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !ok {
		fmt.Println(challenge.Wrong)
		os.Exit(1)
	}
	fmt.Println(challenge.Right)
}
