package stats_test

import (
	"sync"
	"testing"
	"time"

	"github.com/torosent/scyllastress/internal/stats"
)

func TestCollectorTracksMinMaxMean(t *testing.T) {
	c := stats.NewCollector()
	c.Record(100 * time.Millisecond)
	c.Record(300 * time.Millisecond)

	got := c.Stats()
	if got.Runs != 2 {
		t.Fatalf("expected 2 runs, got %d", got.Runs)
	}
	if got.MinMs != 100 {
		t.Fatalf("expected min 100ms, got %g", got.MinMs)
	}
	if got.MaxMs != 300 {
		t.Fatalf("expected max 300ms, got %g", got.MaxMs)
	}
	if got.MeanMs != 200 {
		t.Fatalf("expected mean 200ms, got %g", got.MeanMs)
	}
}

func TestCollectorEmpty(t *testing.T) {
	got := stats.NewCollector().Stats()
	if got.Runs != 0 || got.MeanMs != 0 || got.P99Ms != 0 {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestCollectorConcurrentRecord(t *testing.T) {
	c := stats.NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Record(10 * time.Millisecond)
		}()
	}
	wg.Wait()

	if got := c.Stats().Runs; got != 50 {
		t.Fatalf("expected 50 recorded runs, got %d", got)
	}
}

func TestCollectorPercentilesCoverRecordedRange(t *testing.T) {
	c := stats.NewCollector()
	for i := 1; i <= 100; i++ {
		c.Record(time.Duration(i) * 10 * time.Millisecond)
	}

	got := c.Stats()
	if got.P50Ms < got.MinMs || got.P50Ms > got.P90Ms || got.P90Ms > got.P99Ms {
		t.Fatalf("percentiles out of order: %+v", got)
	}
	if got.P99Ms > got.MaxMs*1.01 {
		t.Fatalf("p99 %g exceeds max %g", got.P99Ms, got.MaxMs)
	}
}
