// Package stats aggregates scraped metric series and run wall times into
// the final batch summary.
package stats

import (
	"math"
	"strconv"
)

// NotAvailable is the sentinel returned when a series is too small to aggregate.
const NotAvailable = "N/A"

// Metric names cassandra-stress reports that every summary collects.
const (
	MetricOpRate      = "Op rate"
	MetricLatencyMean = "Latency mean"
	MetricLatencyP99  = "Latency 99th percentile"
	MetricLatencyMax  = "Latency max"
)

// DefaultMetrics returns the metric names collected for every batch.
func DefaultMetrics() []string {
	return []string{MetricOpRate, MetricLatencyMean, MetricLatencyP99, MetricLatencyMax}
}

// Sum returns the unrounded sum of values with the unit appended, or
// NotAvailable for an empty series.
func Sum(values []float64, unit string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return strconv.FormatFloat(total, 'f', -1, 64) + " " + unit
}

// Average returns the arithmetic mean rounded to two decimals with the unit
// appended, or NotAvailable for an empty series.
func Average(values []float64, unit string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return formatRounded(mean(values), unit)
}

// StdDev returns the population standard deviation rounded to two decimals
// with the unit appended. Fewer than two values yields NotAvailable.
func StdDev(values []float64, unit string) string {
	if len(values) < 2 {
		return NotAvailable
	}
	avg := mean(values)
	var squared float64
	for _, v := range values {
		squared += (v - avg) * (v - avg)
	}
	return formatRounded(math.Sqrt(squared/float64(len(values))), unit)
}

func mean(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// formatRounded rounds to two decimals and trims trailing zeros, so 3.50
// renders as "3.5" and 4.00 as "4".
func formatRounded(v float64, unit string) string {
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + unit
}
