package stats

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector records run wall times in a thread-safe manner.
type Collector struct {
	mu    sync.Mutex
	hist  *hdrhistogram.Histogram
	min   time.Duration
	max   time.Duration
	sum   time.Duration
	count int64
}

// WallTimeStats summarizes the wall-time distribution of a batch in
// milliseconds.
type WallTimeStats struct {
	Runs   int64   `json:"runs" yaml:"runs"`
	MinMs  float64 `json:"min_ms" yaml:"min_ms"`
	MaxMs  float64 `json:"max_ms" yaml:"max_ms"`
	MeanMs float64 `json:"mean_ms" yaml:"mean_ms"`
	P50Ms  float64 `json:"p50_ms" yaml:"p50_ms"`
	P90Ms  float64 `json:"p90_ms" yaml:"p90_ms"`
	P99Ms  float64 `json:"p99_ms" yaml:"p99_ms"`
}

func NewCollector() *Collector {
	// Track wall times from 1ms up to 6h with 3 significant figures.
	return &Collector{hist: hdrhistogram.New(1, 21_600_000, 3)}
}

// Record adds one run's wall time to the distribution.
func (c *Collector) Record(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := d.Milliseconds()
	if ms < c.hist.LowestTrackableValue() {
		ms = c.hist.LowestTrackableValue()
	}
	if ms > c.hist.HighestTrackableValue() {
		ms = c.hist.HighestTrackableValue()
	}
	_ = c.hist.RecordValue(ms)

	if c.count == 0 || d < c.min {
		c.min = d
	}
	if d > c.max {
		c.max = d
	}
	c.sum += d
	c.count++
}

// Stats computes the current wall-time distribution.
func (c *Collector) Stats() WallTimeStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := WallTimeStats{
		Runs:  c.count,
		MinMs: float64(c.min) / float64(time.Millisecond),
		MaxMs: float64(c.max) / float64(time.Millisecond),
	}
	if c.count > 0 {
		stats.MeanMs = float64(c.sum) / float64(c.count) / float64(time.Millisecond)
	}
	if c.hist.TotalCount() > 0 {
		stats.P50Ms = float64(c.hist.ValueAtQuantile(50))
		stats.P90Ms = float64(c.hist.ValueAtQuantile(90))
		stats.P99Ms = float64(c.hist.ValueAtQuantile(99))
	}
	return stats
}
