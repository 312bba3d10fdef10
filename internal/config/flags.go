package config

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newFlagCommand creates a cobra command with all flags configured.
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scyllastress",
		Short:         "Run parallel cassandra-stress batches against a ScyllaDB container",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configureFlags(cmd.Flags())
	return cmd
}

// configureFlags sets up all CLI flags on the provided flag set.
func configureFlags(flags *pflag.FlagSet) {
	// Target flags
	flags.String("container-name", "some-scylla", "Name of the ScyllaDB container")
	flags.Int("threads", 10, "cassandra-stress client threads per run")

	// Batch flags: either --runs with --duration, or --durations
	flags.IntP("runs", "n", 0, "Number of identical parallel runs")
	flags.StringP("duration", "d", "", "Duration of each run, e.g. 10s, 5m, 1h")
	flags.StringSlice("durations", nil, "Distinct duration per run (repeatable)")

	// Readiness flags
	flags.Duration("poll-interval", 10*time.Second, "Spacing between readiness probes")
	flags.Duration("poll-max-wait", 150*time.Second, "Total readiness wait budget")

	// Output flags
	flags.Bool("stress-logs", false, "Echo full cassandra-stress output per run")
	flags.Bool("export", false, "Export the summary to a results file")
	flags.String("export-format", "json", "Export format: json or yaml")
	flags.String("export-dir", "results", "Directory for exported summaries")
	flags.StringSlice("metric", nil, "Extra metric name to scrape (repeatable)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Mirror log output to this file")
	flags.String("config", "", "Path to configuration file (JSON or YAML)")

	// Tracing flags
	flags.String("trace-endpoint", "", "OTLP endpoint; empty disables tracing")
	flags.String("trace-protocol", "grpc", "OTLP transport: grpc or http")
	flags.String("trace-service-name", "", "Service name reported on spans")
	flags.Float64("trace-sample-rate", 1.0, "Trace sampling ratio between 0.0 and 1.0")
	flags.Bool("trace-insecure", false, "Disable TLS towards the OTLP endpoint")
}
