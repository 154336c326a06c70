// Package batch renders a set of challenge fixtures to image files
// using a worker pool.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"mixtea-solver/internal/challenge"
	"mixtea-solver/internal/textimg"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Job is one fixture to solve and rasterize.
type Job struct {
	Name     string
	Instance challenge.Instance
	OutPath  string
	Format   string // "webp" or "tga"
	Scale    int
}

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	OutPath string
	Text    string
	Success bool
	Error   string
}

// Run processes all jobs using a worker pool and returns one Result
// per job, in job order.
func Run(workers int, jobs []Job) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(jobs))

	jobChan := make(chan int, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = process(jobs[idx])
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	return results
}

func process(job Job) Result {
	text := job.Instance.Solve()
	img := textimg.Render([]string{text}, job.Scale)

	if err := os.MkdirAll(filepath.Dir(job.OutPath), 0755); err != nil {
		return Result{Name: job.Name, OutPath: job.OutPath, Error: err.Error()}
	}

	f, err := os.Create(job.OutPath)
	if err != nil {
		return Result{Name: job.Name, OutPath: job.OutPath, Error: err.Error()}
	}
	defer f.Close()

	if err := encode(f, img, job.Format); err != nil {
		return Result{Name: job.Name, OutPath: job.OutPath, Error: err.Error()}
	}

	return Result{Name: job.Name, OutPath: job.OutPath, Text: text, Success: true}
}

func encode(f *os.File, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "", "webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want webp or tga)", format)
	}
	return nil
}
