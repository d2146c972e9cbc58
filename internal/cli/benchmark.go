package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/keymaclab/keymac/internal/benchmark"
)

// BenchmarkRunner runs the HMAC throughput benchmark from the menu.
type BenchmarkRunner struct {
	display DisplayHandler
	input   UserInputHandler
}

// NewBenchmarkRunner creates a new benchmark runner.
func NewBenchmarkRunner(display DisplayHandler, input UserInputHandler) *BenchmarkRunner {
	return &BenchmarkRunner{display: display, input: input}
}

// RunHMACBenchmark times HMAC over every supported hash algorithm and
// narrates the sorted results as menu steps.
func (b *BenchmarkRunner) RunHMACBenchmark() (string, []string, error) {
	text, err := b.input.GetText("Enter sample text for benchmarking: ")
	if err != nil {
		return "", nil, err
	}
	iterations, err := b.input.GetOutputLength(10000)
	if err != nil {
		return "", nil, err
	}

	done := make(chan bool)
	go b.showLoadingAnimation(done)
	results, err := benchmark.RunHMAC([]byte("benchmark-key"), []byte(text), iterations)
	done <- true
	if err != nil {
		return "", nil, fmt.Errorf("running benchmark: %w", err)
	}

	steps := make([]string, 0, len(results)+6)
	steps = append(steps, "HMAC Benchmark", "=============================")
	steps = append(steps, fmt.Sprintf("Running benchmark with %d iterations...", iterations))
	steps = append(steps, fmt.Sprintf("Sample text: %s", text))
	steps = append(steps, "----------------------------------------")
	steps = append(steps, "Benchmark Results:")

	fastest := results[0].Duration
	for i, r := range results {
		perOp := r.Duration / time.Duration(iterations)
		percent := float64(r.Duration) / float64(fastest) * 100
		diff := " (baseline)"
		if i > 0 {
			diff = fmt.Sprintf(" (+%.1f%%)", percent-100)
		}
		steps = append(steps, fmt.Sprintf("%d. %s: %d ops, %v/op%s",
			i+1, strings.ToUpper(r.Algorithm.String()), iterations, perOp, diff))
	}

	steps = append(steps, "----------------------------------------", "Recommendations:")
	steps = append(steps, "Fastest Algorithm: "+strings.ToUpper(results[0].Algorithm.String()))

	return "", steps, nil
}

// showLoadingAnimation displays a spinner while the benchmark runs.
func (b *BenchmarkRunner) showLoadingAnimation(done chan bool) {
	loadingChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	i := 0
	for {
		select {
		case <-done:
			fmt.Print("\r\033[K")
			return
		default:
			fmt.Printf("\r%s Running benchmark... %s", loadingChars[i], strings.Repeat(".", (i%5)+1))
			i = (i + 1) % len(loadingChars)
			time.Sleep(100 * time.Millisecond)
		}
	}
}
