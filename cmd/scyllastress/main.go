package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/torosent/scyllastress/internal/command"
	"github.com/torosent/scyllastress/internal/config"
	"github.com/torosent/scyllastress/internal/docker"
	"github.com/torosent/scyllastress/internal/logging"
	"github.com/torosent/scyllastress/internal/output"
	"github.com/torosent/scyllastress/internal/runner"
	"github.com/torosent/scyllastress/internal/scraper"
	"github.com/torosent/scyllastress/internal/stats"
	"github.com/torosent/scyllastress/internal/tracing"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	closeLog, err := logging.Configure(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	provider, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Warnf("tracing shutdown: %v", err)
		}
	}()

	env := docker.CLI{}
	gate := &docker.Gate{
		Env: env,
		Poller: &docker.Poller{
			Env:      env,
			Interval: cfg.PollInterval,
			MaxWait:  cfg.PollMaxWait,
			Log:      log.StandardLogger(),
		},
		Log: log.StandardLogger(),
	}

	address, err := gate.EnsureReady(ctx, cfg.ContainerName)
	if err != nil {
		return err
	}
	log.Infof("node in container %q is ready at %s", cfg.ContainerName, address)

	batch := command.Batch{
		Count:     cfg.Runs,
		Duration:  cfg.Duration,
		Durations: cfg.Durations,
	}
	builder := command.NewBuilder(cfg.ContainerName, address, cfg.Threads)
	invocations, err := builder.Build(batch)
	if err != nil {
		return err
	}
	log.Infof("executing %d stress run(s):\n%s", len(invocations), strings.Join(invocations, "\n"))

	r := runner.New(runner.Options{
		Log:        log.StandardLogger(),
		EchoOutput: cfg.StressLogs,
		Tracer:     provider.Tracer(),
	})

	batchCtx, span := tracing.StartBatchSpan(ctx, provider.Tracer(), cfg.ContainerName, len(invocations))
	results := r.ExecuteAll(batchCtx, invocations)
	tracing.EndSpan(span, nil, attribute.Int("stress.results", len(results)))

	collector := stats.NewCollector()
	for _, res := range results {
		collector.Record(res.Duration)
	}

	sc := scraper.New(log.StandardLogger())
	metrics := append(stats.DefaultMetrics(), cfg.ExtraMetrics...)
	samples := make(map[string][]float64, len(metrics))
	for _, metric := range metrics {
		samples[metric] = sc.Extract(results, metric)
	}

	summary := stats.BuildSummary(
		cfg.ContainerName,
		address,
		batch.ExpandedDurations(),
		samples,
		results,
		collector.Stats(),
	)

	output.PrintReport(os.Stdout, summary)

	if cfg.Export {
		path, err := output.Export(cfg.ExportDir, cfg.ExportFormat, summary)
		if err != nil {
			return err
		}
		log.Infof("summary exported to %s", path)
	}
	return nil
}
