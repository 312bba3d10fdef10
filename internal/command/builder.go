// Package command composes cassandra-stress invocation strings.
package command

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const durationPlaceholder = "{DURATION}"

var (
	// ErrInvalidDuration reports a duration token that does not match
	// the <digits><s|m|h> rule.
	ErrInvalidDuration = errors.New("invalid duration token")

	// ErrInvalidRunCount reports a non-positive run count.
	ErrInvalidRunCount = errors.New("run count must be a positive integer")

	// ErrBatchSpec reports a batch that sets both or neither of the two
	// mutually exclusive request forms.
	ErrBatchSpec = errors.New("exactly one of count+duration or durations must be set")
)

var durationPattern = regexp.MustCompile(`^[0-9]+[smh]$`)

// ValidateDuration checks a single duration token such as "10s" or "5m".
func ValidateDuration(token string) error {
	if !durationPattern.MatchString(token) {
		return fmt.Errorf("%w: %q must match %s", ErrInvalidDuration, token, durationPattern)
	}
	return nil
}

// Batch describes how many runs to build and how long each one lasts.
// Either Count+Duration produces Count identical invocations, or Durations
// produces one invocation per entry.
type Batch struct {
	Count     int
	Duration  string
	Durations []string
}

// ExpandedDurations returns one duration token per requested run.
func (b Batch) ExpandedDurations() []string {
	if len(b.Durations) > 0 {
		return b.Durations
	}
	out := make([]string, 0, b.Count)
	for i := 0; i < b.Count; i++ {
		out = append(out, b.Duration)
	}
	return out
}

// Builder fills the cassandra-stress template for one container and node.
type Builder struct {
	container string
	address   string
	threads   int
}

func NewBuilder(container, address string, threads int) *Builder {
	return &Builder{container: container, address: address, threads: threads}
}

// Build validates the batch and returns one invocation string per run.
// Validation happens before any invocation is built, so a single bad token
// aborts the whole batch with no partial command list.
func (b *Builder) Build(batch Batch) ([]string, error) {
	repeated := batch.Count != 0 || batch.Duration != ""
	listed := len(batch.Durations) > 0
	if repeated == listed {
		return nil, ErrBatchSpec
	}

	if listed {
		for _, d := range batch.Durations {
			if err := ValidateDuration(d); err != nil {
				return nil, err
			}
		}
		invocations := make([]string, 0, len(batch.Durations))
		for _, d := range batch.Durations {
			invocations = append(invocations, b.fill(d))
		}
		return invocations, nil
	}

	if batch.Count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRunCount, batch.Count)
	}
	if err := ValidateDuration(batch.Duration); err != nil {
		return nil, err
	}
	invocation := b.fill(batch.Duration)
	invocations := make([]string, batch.Count)
	for i := range invocations {
		invocations[i] = invocation
	}
	return invocations, nil
}

func (b *Builder) fill(duration string) string {
	return strings.ReplaceAll(b.template(), durationPlaceholder, duration)
}

func (b *Builder) template() string {
	return fmt.Sprintf("docker exec %s cassandra-stress write duration=%s -rate threads=%d -node %s",
		b.container, durationPlaceholder, b.threads, b.address)
}
