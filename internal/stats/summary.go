package stats

import (
	"fmt"
	"time"

	"github.com/torosent/scyllastress/internal/runner"
)

// timestampLayout keeps centisecond precision in the timing block.
const timestampLayout = "2006-01-02 15:04:05.00"

// Timing records the observed lifecycle of a single run.
type Timing struct {
	Start    string `json:"start_time" yaml:"start_time"`
	End      string `json:"end_time" yaml:"end_time"`
	Duration string `json:"duration" yaml:"duration"`
}

// Summary is the final aggregated report for one stress batch.
type Summary struct {
	Container        string               `json:"container" yaml:"container"`
	Node             string               `json:"node" yaml:"node"`
	RunsExecuted     int                  `json:"runs_executed" yaml:"runs_executed"`
	RunDurations     []string             `json:"run_durations" yaml:"run_durations"`
	Samples          map[string][]float64 `json:"samples" yaml:"samples"`
	OpRateSum        string               `json:"op_rate_sum" yaml:"op_rate_sum"`
	AvgLatencyMean   string               `json:"avg_latency_mean" yaml:"avg_latency_mean"`
	AvgLatencyP99    string               `json:"avg_latency_p99" yaml:"avg_latency_p99"`
	StdDevLatencyMax string               `json:"std_dev_latency_max" yaml:"std_dev_latency_max"`
	Timings          map[string]Timing    `json:"timings" yaml:"timings"`
	WallTime         WallTimeStats        `json:"wall_time" yaml:"wall_time"`
}

// BuildSummary assembles the report for one batch. Series in samples may be
// shorter than the run count when a metric was missing from some outputs;
// the aggregates treat each series independently.
func BuildSummary(container, node string, durations []string, samples map[string][]float64, results []runner.Result, wall WallTimeStats) Summary {
	timings := make(map[string]Timing, len(results))
	for i, res := range results {
		timings[fmt.Sprintf("Stress command %d", i+1)] = newTiming(res)
	}

	return Summary{
		Container:        container,
		Node:             node,
		RunsExecuted:     len(results),
		RunDurations:     durations,
		Samples:          samples,
		OpRateSum:        Sum(samples[MetricOpRate], "op/s"),
		AvgLatencyMean:   Average(samples[MetricLatencyMean], "ms"),
		AvgLatencyP99:    Average(samples[MetricLatencyP99], "ms"),
		StdDevLatencyMax: StdDev(samples[MetricLatencyMax], "ms"),
		Timings:          timings,
		WallTime:         wall,
	}
}

func newTiming(res runner.Result) Timing {
	return Timing{
		Start:    res.Start.Format(timestampLayout),
		End:      res.End.Format(timestampLayout),
		Duration: formatRounded(res.Duration.Round(10*time.Millisecond).Seconds(), "sec"),
	}
}
