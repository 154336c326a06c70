// render decodes one or more fixtures and writes each recovered
// message as an image. With no config arguments it renders the
// embedded reference fixture.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mixtea-solver/internal/batch"
	"mixtea-solver/internal/challenge"
	"mixtea-solver/internal/config"
)

func main() {
	outputDir := flag.String("output", ".", "Output directory")
	format := flag.String("format", "webp", "Image format: webp or tga")
	scale := flag.Int("scale", 4, "Integer upscale factor")
	workers := flag.Int("workers", 4, "Number of worker goroutines")
	flag.Parse()

	var jobs []batch.Job

	if flag.NArg() == 0 {
		jobs = append(jobs, batch.Job{
			Name:     "reference",
			Instance: challenge.Reference(),
			OutPath:  filepath.Join(*outputDir, "reference."+*format),
			Format:   *format,
			Scale:    *scale,
		})
	}
	for _, path := range flag.Args() {
		in, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		jobs = append(jobs, batch.Job{
			Name:     name,
			Instance: in,
			OutPath:  filepath.Join(*outputDir, name+"."+*format),
			Format:   *format,
			Scale:    *scale,
		})
	}

	results := batch.Run(*workers, jobs)

	failed := 0
	for _, r := range results {
		if r.Success {
			fmt.Printf("  %s: %s\n", r.Name, r.OutPath)
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "  %s: %s\n", r.Name, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-failed, len(results))

	if failed > 0 {
		os.Exit(1)
	}
}
