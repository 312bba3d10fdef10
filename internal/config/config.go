// Package config loads and validates the orchestrator configuration from
// CLI flags and an optional JSON/YAML config file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/torosent/scyllastress/internal/command"
)

// Config holds everything one batch needs.
type Config struct {
	ContainerName string
	Runs          int
	Duration      string
	Durations     []string
	Threads       int

	// StressLogs echoes each run's full stdout at info level.
	StressLogs bool

	Export       bool
	ExportFormat string
	ExportDir    string

	// ExtraMetrics are scraped in addition to the defaults.
	ExtraMetrics []string

	PollInterval time.Duration
	PollMaxWait  time.Duration

	LogLevel string
	LogFile  string

	ConfigFile string
	Tracing    TracingConfig
}

// TracingConfig controls the optional OTLP trace export.
type TracingConfig struct {
	Endpoint    string
	Protocol    string
	ServiceName string
	SampleRate  float64
	Insecure    bool
}

// Enabled reports whether spans should be exported.
func (t TracingConfig) Enabled() bool {
	return t.Endpoint != ""
}

// Validate checks the whole config before anything executes, so a bad
// value aborts the batch with no partial work.
func (c *Config) Validate() error {
	if c.ContainerName == "" {
		return errors.New("container name is required")
	}

	repeated := c.Runs != 0 || c.Duration != ""
	listed := len(c.Durations) > 0
	if repeated == listed {
		return fmt.Errorf("%w (use --runs with --duration, or --durations)", command.ErrBatchSpec)
	}
	if repeated {
		if c.Runs <= 0 {
			return fmt.Errorf("%w: got %d", command.ErrInvalidRunCount, c.Runs)
		}
		if err := command.ValidateDuration(c.Duration); err != nil {
			return err
		}
	}
	for _, d := range c.Durations {
		if err := command.ValidateDuration(d); err != nil {
			return err
		}
	}

	if c.Threads <= 0 {
		return fmt.Errorf("threads must be positive, got %d", c.Threads)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.PollMaxWait < c.PollInterval {
		return fmt.Errorf("poll max wait %s is shorter than the interval %s", c.PollMaxWait, c.PollInterval)
	}

	switch c.ExportFormat {
	case "json", "yaml":
	default:
		return fmt.Errorf("export format must be json or yaml, got %q", c.ExportFormat)
	}

	if c.Tracing.Enabled() {
		switch c.Tracing.Protocol {
		case "grpc", "http":
		default:
			return fmt.Errorf("trace protocol must be grpc or http, got %q", c.Tracing.Protocol)
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1.0 {
			return fmt.Errorf("trace sample rate must be between 0.0 and 1.0, got %g", c.Tracing.SampleRate)
		}
	}
	return nil
}
