// Package output renders the batch summary and exports it to disk.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/torosent/scyllastress/internal/stats"
)

// PrintReport outputs a human-readable summary report.
func PrintReport(w io.Writer, summary stats.Summary) {
	fmt.Fprintln(w, "\n--- Stress Batch Results ---")
	fmt.Fprintf(w, "Container:            %s\n", summary.Container)
	fmt.Fprintf(w, "Node:                 %s\n", summary.Node)
	fmt.Fprintf(w, "Runs executed:        %d\n", summary.RunsExecuted)
	fmt.Fprintf(w, "Run durations:        %s\n", strings.Join(summary.RunDurations, ", "))
	fmt.Fprintf(w, "Op rate sum:          %s\n", summary.OpRateSum)
	fmt.Fprintf(w, "Avg latency mean:     %s\n", summary.AvgLatencyMean)
	fmt.Fprintf(w, "Avg latency p99:      %s\n", summary.AvgLatencyP99)
	fmt.Fprintf(w, "Stddev latency max:   %s\n", summary.StdDevLatencyMax)

	if len(summary.Samples) > 0 {
		fmt.Fprintln(w, "\nScraped Samples:")
		names := make([]string, 0, len(summary.Samples))
		for name := range summary.Samples {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %v\n", name, summary.Samples[name])
		}
	}

	fmt.Fprintln(w, "\nWall Time:")
	fmt.Fprintf(w, "  Min:                %.2f ms\n", summary.WallTime.MinMs)
	fmt.Fprintf(w, "  Max:                %.2f ms\n", summary.WallTime.MaxMs)
	fmt.Fprintf(w, "  Mean:               %.2f ms\n", summary.WallTime.MeanMs)
	fmt.Fprintf(w, "  P50:                %.2f ms\n", summary.WallTime.P50Ms)
	fmt.Fprintf(w, "  P90:                %.2f ms\n", summary.WallTime.P90Ms)
	fmt.Fprintf(w, "  P99:                %.2f ms\n", summary.WallTime.P99Ms)

	if len(summary.Timings) > 0 {
		fmt.Fprintln(w, "\nTimings:")
		keys := make([]string, 0, len(summary.Timings))
		for key := range summary.Timings {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			timing := summary.Timings[key]
			fmt.Fprintf(w, "  - %s: start=%s end=%s duration=%s\n", key, timing.Start, timing.End, timing.Duration)
		}
	}
}

// PrintJSONReport outputs a JSON-formatted report.
func PrintJSONReport(w io.Writer, summary stats.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
