package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/torosent/scyllastress/internal/command"
	"github.com/torosent/scyllastress/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		ContainerName: "some-scylla",
		Runs:          2,
		Duration:      "10s",
		Threads:       10,
		PollInterval:  10 * time.Second,
		PollMaxWait:   150 * time.Second,
		ExportFormat:  "json",
		LogLevel:      "info",
	}
}

func TestValidateAcceptsRepeatedForm(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAcceptsDurationList(t *testing.T) {
	cfg := validConfig()
	cfg.Runs = 0
	cfg.Duration = ""
	cfg.Durations = []string{"10s", "5m", "1h"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBothForms(t *testing.T) {
	cfg := validConfig()
	cfg.Durations = []string{"20s"}
	if err := cfg.Validate(); !errors.Is(err, command.ErrBatchSpec) {
		t.Fatalf("expected ErrBatchSpec, got %v", err)
	}
}

func TestValidateRejectsNeitherForm(t *testing.T) {
	cfg := validConfig()
	cfg.Runs = 0
	cfg.Duration = ""
	if err := cfg.Validate(); !errors.Is(err, command.ErrBatchSpec) {
		t.Fatalf("expected ErrBatchSpec, got %v", err)
	}
}

func TestValidateRejectsBadDuration(t *testing.T) {
	cfg := validConfig()
	cfg.Duration = "10x"
	if err := cfg.Validate(); !errors.Is(err, command.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestValidateRejectsNonPositiveRuns(t *testing.T) {
	cfg := validConfig()
	cfg.Runs = -2
	if err := cfg.Validate(); !errors.Is(err, command.ErrInvalidRunCount) {
		t.Fatalf("expected ErrInvalidRunCount, got %v", err)
	}
}

func TestValidateRejectsBadExportFormat(t *testing.T) {
	cfg := validConfig()
	cfg.ExportFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an unsupported export format")
	}
}

func TestValidateRejectsShortPollBudget(t *testing.T) {
	cfg := validConfig()
	cfg.PollMaxWait = time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error when max wait is below the interval")
	}
}

func TestValidateTracing(t *testing.T) {
	cfg := validConfig()
	cfg.Tracing = config.TracingConfig{Endpoint: "localhost:4317", Protocol: "carrier-pigeon", SampleRate: 1.0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an unsupported trace protocol")
	}

	cfg.Tracing = config.TracingConfig{Endpoint: "localhost:4317", Protocol: "grpc", SampleRate: 2.0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an out-of-range sample rate")
	}
}
