// Package scraper extracts numeric metrics from captured cassandra-stress
// output.
package scraper

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/torosent/scyllastress/internal/runner"
)

// resultsMarker delimits progress output from the final metrics block.
const resultsMarker = "Results:"

// ErrMetricParse reports a matched metric token that is not numeric.
var ErrMetricParse = errors.New("metric value is not numeric")

// Scraper pulls named metric values out of run output.
type Scraper struct {
	log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Scraper {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scraper{log: log}
}

// Extract returns the values reported for one metric across all runs. Only
// the text after the last results marker is searched, so metric names
// mentioned in progress output do not match. Runs that do not report the
// metric are skipped with a warning, which means series for different
// metrics are not index-aligned across runs.
func (s *Scraper) Extract(results []runner.Result, metric string) []float64 {
	pattern := regexp.MustCompile(regexp.QuoteMeta(metric) + `\s*:\s*([\d,.]+)`)

	var values []float64
	for _, res := range results {
		match := pattern.FindStringSubmatch(resultsTail(res.Stdout))
		if match == nil {
			s.log.Warnf("metric %q not found in stress output of run %s", metric, res.ID)
			continue
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
		if err != nil {
			s.log.Warnf("run %s: %v", res.ID, fmt.Errorf("%w: metric %q token %q", ErrMetricParse, metric, match[1]))
			continue
		}
		values = append(values, value)
	}
	return values
}

// resultsTail returns the text after the last results marker, or the whole
// output when the marker never occurs.
func resultsTail(stdout string) string {
	if idx := strings.LastIndex(stdout, resultsMarker); idx >= 0 {
		return stdout[idx+len(resultsMarker):]
	}
	return stdout
}
