// Package benchmark compares HMAC throughput across every hash algorithm in
// hashdispatch's closed set, rendering the results as a table.
package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/keymaclab/keymac/internal/display"
	"github.com/keymaclab/keymac/internal/hashdispatch"
	"github.com/keymaclab/keymac/internal/keymac"
)

// Result holds one algorithm's measured HMAC throughput.
type Result struct {
	Algorithm   hashdispatch.Algorithm
	Duration    time.Duration
	MemoryUsage uint64
	Allocations uint64
}

// PlatformInfo describes the system the benchmark ran on.
type PlatformInfo struct {
	OS           string
	Architecture string
	CPUCount     int
	GoVersion    string
}

func getPlatformInfo() PlatformInfo {
	return PlatformInfo{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		CPUCount:     runtime.NumCPU(),
		GoVersion:    runtime.Version(),
	}
}

// RunHMAC runs iterations HMAC computations of text under key for every
// supported algorithm, and returns the results sorted fastest-first.
func RunHMAC(key, text []byte, iterations int) ([]Result, error) {
	results := make([]Result, 0, len(hashdispatch.Algorithms))

	for _, alg := range hashdispatch.Algorithms {
		if _, err := keymac.Sum(alg, key, text); err != nil {
			return nil, fmt.Errorf("warming up %s: %w", alg, err)
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		startAllocs := m.TotalAlloc
		startMemory := m.Alloc

		start := time.Now()
		for j := 0; j < iterations; j++ {
			if _, err := keymac.Sum(alg, key, text); err != nil {
				return nil, fmt.Errorf("running %s: %w", alg, err)
			}
		}
		duration := time.Since(start)

		runtime.ReadMemStats(&m)
		results = append(results, Result{
			Algorithm:   alg,
			Duration:    duration,
			MemoryUsage: m.Alloc - startMemory,
			Allocations: m.TotalAlloc - startAllocs,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Duration < results[j].Duration
	})
	return results, nil
}

// Display renders results as a tablewriter table to stdout, alongside basic
// platform information.
func Display(results []Result, iterations int) {
	platform := getPlatformInfo()
	fmt.Printf("Platform: %s/%s, %d CPUs, %s\n", platform.OS, platform.Architecture, platform.CPUCount, platform.GoVersion)
	fmt.Printf("Iterations per algorithm: %d\n\n", iterations)

	if len(results) == 0 {
		return
	}
	fastest := results[0].Duration

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Algorithm", "Total Time", "Per-Op", "Relative", "Bytes/Op", "Allocs/Op"})
	for _, r := range results {
		perOp := r.Duration / time.Duration(iterations)
		relative := float64(r.Duration) / float64(fastest)
		// nolint:errcheck // table append is safe to ignore in a CLI demo
		table.Append([]string{
			r.Algorithm.String(),
			display.FormatDuration(r.Duration),
			perOp.String(),
			fmt.Sprintf("%.2fx", relative),
			fmt.Sprintf("%d", r.MemoryUsage/uint64(iterations)),
			fmt.Sprintf("%d", r.Allocations/uint64(iterations)),
		})
	}
	// nolint:errcheck // table render is safe to ignore in a CLI demo
	table.Render()
}
