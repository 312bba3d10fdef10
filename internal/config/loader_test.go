package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/torosent/scyllastress/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.NewLoader().Load([]string{"--runs", "2", "--duration", "10s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ContainerName != "some-scylla" {
		t.Fatalf("expected default container name, got %q", cfg.ContainerName)
	}
	if cfg.Threads != 10 {
		t.Fatalf("expected default threads 10, got %d", cfg.Threads)
	}
	if cfg.PollInterval != 10*time.Second || cfg.PollMaxWait != 150*time.Second {
		t.Fatalf("unexpected poll defaults: %s / %s", cfg.PollInterval, cfg.PollMaxWait)
	}
	if cfg.ExportFormat != "json" {
		t.Fatalf("expected default export format json, got %q", cfg.ExportFormat)
	}
	if cfg.Tracing.Protocol != "grpc" || cfg.Tracing.SampleRate != 1.0 {
		t.Fatalf("unexpected tracing defaults: %+v", cfg.Tracing)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := config.NewLoader().Load([]string{
		"--container-name", "scylla-test",
		"--durations", "10s", "--durations", "20s",
		"--threads", "4",
		"--stress-logs",
		"--metric", "Total errors",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ContainerName != "scylla-test" {
		t.Fatalf("expected scylla-test, got %q", cfg.ContainerName)
	}
	if len(cfg.Durations) != 2 || cfg.Durations[1] != "20s" {
		t.Fatalf("unexpected durations: %v", cfg.Durations)
	}
	if cfg.Threads != 4 || !cfg.StressLogs {
		t.Fatalf("unexpected flags: threads=%d stress-logs=%t", cfg.Threads, cfg.StressLogs)
	}
	if len(cfg.ExtraMetrics) != 1 || cfg.ExtraMetrics[0] != "Total errors" {
		t.Fatalf("unexpected extra metrics: %v", cfg.ExtraMetrics)
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := config.NewLoader().Load([]string{"--help"})
	if !errors.Is(err, config.ErrHelpRequested) {
		t.Fatalf("expected ErrHelpRequested, got %v", err)
	}
}

func TestLoadNoArgsShowsHelp(t *testing.T) {
	_, err := config.NewLoader().Load(nil)
	if !errors.Is(err, config.ErrHelpRequested) {
		t.Fatalf("expected ErrHelpRequested, got %v", err)
	}
}

func TestLoadConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "container-name: from-file\nruns: 3\nduration: 30s\nthreads: 8\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := config.NewLoader().Load([]string{"--config", path, "--threads", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ContainerName != "from-file" {
		t.Fatalf("expected file setting, got %q", cfg.ContainerName)
	}
	if cfg.Runs != 3 || cfg.Duration != "30s" {
		t.Fatalf("unexpected batch settings: runs=%d duration=%q", cfg.Runs, cfg.Duration)
	}
	if cfg.Threads != 2 {
		t.Fatalf("expected flag to override file, got threads=%d", cfg.Threads)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := config.NewLoader().Load([]string{"--config", "/does/not/exist.yaml"})
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
