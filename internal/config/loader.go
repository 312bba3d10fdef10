package config

import (
	"errors"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loader handles loading configuration from files and command-line arguments.
type Loader struct{}

// ErrHelpRequested is returned when the user requests help via --help flag.
var ErrHelpRequested = errors.New("help requested")

// NewLoader creates a new configuration Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses command-line arguments and an optional config file into a
// Config. File settings apply first, flags override them.
func (Loader) Load(args []string) (*Config, error) {
	cmd := newFlagCommand()
	if err := cmd.Flags().Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			displayHelp(cmd)
			return nil, ErrHelpRequested
		}
		return nil, err
	}

	flags := cmd.Flags()
	if helpFlag := flags.Lookup("help"); helpFlag != nil {
		if wantsHelp, err := strconv.ParseBool(helpFlag.Value.String()); err == nil && wantsHelp {
			displayHelp(cmd)
			return nil, ErrHelpRequested
		}
	}

	configPath := flags.Lookup("config").Value.String()
	if len(args) == 0 && configPath == "" {
		displayHelp(cmd)
		return nil, ErrHelpRequested
	}

	cfg := defaults()
	cfg.ConfigFile = configPath

	if configPath != "" {
		cfgViper := viper.New()
		cfgViper.SetConfigFile(configPath)
		if err := cfgViper.ReadInConfig(); err != nil {
			return nil, err
		}
		applyConfigSettings(cfg, cfgViper)
	}

	applyFlagOverrides(cfg, flags)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ContainerName: "some-scylla",
		Threads:       10,
		PollInterval:  10 * time.Second,
		PollMaxWait:   150 * time.Second,
		ExportFormat:  "json",
		ExportDir:     "results",
		LogLevel:      "info",
		Tracing: TracingConfig{
			Protocol:   "grpc",
			SampleRate: 1.0,
		},
	}
}

// applyConfigSettings applies settings from a config file. Keys match the
// flag names.
func applyConfigSettings(cfg *Config, v *viper.Viper) {
	if v.IsSet("container-name") {
		cfg.ContainerName = v.GetString("container-name")
	}
	if v.IsSet("threads") {
		cfg.Threads = v.GetInt("threads")
	}
	if v.IsSet("runs") {
		cfg.Runs = v.GetInt("runs")
	}
	if v.IsSet("duration") {
		cfg.Duration = v.GetString("duration")
	}
	if v.IsSet("durations") {
		cfg.Durations = v.GetStringSlice("durations")
	}
	if v.IsSet("poll-interval") {
		cfg.PollInterval = v.GetDuration("poll-interval")
	}
	if v.IsSet("poll-max-wait") {
		cfg.PollMaxWait = v.GetDuration("poll-max-wait")
	}
	if v.IsSet("stress-logs") {
		cfg.StressLogs = v.GetBool("stress-logs")
	}
	if v.IsSet("export") {
		cfg.Export = v.GetBool("export")
	}
	if v.IsSet("export-format") {
		cfg.ExportFormat = v.GetString("export-format")
	}
	if v.IsSet("export-dir") {
		cfg.ExportDir = v.GetString("export-dir")
	}
	if v.IsSet("metric") {
		cfg.ExtraMetrics = v.GetStringSlice("metric")
	}
	if v.IsSet("log-level") {
		cfg.LogLevel = v.GetString("log-level")
	}
	if v.IsSet("log-file") {
		cfg.LogFile = v.GetString("log-file")
	}
	if v.IsSet("trace-endpoint") {
		cfg.Tracing.Endpoint = v.GetString("trace-endpoint")
	}
	if v.IsSet("trace-protocol") {
		cfg.Tracing.Protocol = v.GetString("trace-protocol")
	}
	if v.IsSet("trace-service-name") {
		cfg.Tracing.ServiceName = v.GetString("trace-service-name")
	}
	if v.IsSet("trace-sample-rate") {
		cfg.Tracing.SampleRate = v.GetFloat64("trace-sample-rate")
	}
	if v.IsSet("trace-insecure") {
		cfg.Tracing.Insecure = v.GetBool("trace-insecure")
	}
}

// applyFlagOverrides applies every flag the user set explicitly.
func applyFlagOverrides(cfg *Config, flags *pflag.FlagSet) {
	if flags.Changed("container-name") {
		cfg.ContainerName, _ = flags.GetString("container-name")
	}
	if flags.Changed("threads") {
		cfg.Threads, _ = flags.GetInt("threads")
	}
	if flags.Changed("runs") {
		cfg.Runs, _ = flags.GetInt("runs")
	}
	if flags.Changed("duration") {
		cfg.Duration, _ = flags.GetString("duration")
	}
	if flags.Changed("durations") {
		cfg.Durations, _ = flags.GetStringSlice("durations")
	}
	if flags.Changed("poll-interval") {
		cfg.PollInterval, _ = flags.GetDuration("poll-interval")
	}
	if flags.Changed("poll-max-wait") {
		cfg.PollMaxWait, _ = flags.GetDuration("poll-max-wait")
	}
	if flags.Changed("stress-logs") {
		cfg.StressLogs, _ = flags.GetBool("stress-logs")
	}
	if flags.Changed("export") {
		cfg.Export, _ = flags.GetBool("export")
	}
	if flags.Changed("export-format") {
		cfg.ExportFormat, _ = flags.GetString("export-format")
	}
	if flags.Changed("export-dir") {
		cfg.ExportDir, _ = flags.GetString("export-dir")
	}
	if flags.Changed("metric") {
		cfg.ExtraMetrics, _ = flags.GetStringSlice("metric")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("trace-endpoint") {
		cfg.Tracing.Endpoint, _ = flags.GetString("trace-endpoint")
	}
	if flags.Changed("trace-protocol") {
		cfg.Tracing.Protocol, _ = flags.GetString("trace-protocol")
	}
	if flags.Changed("trace-service-name") {
		cfg.Tracing.ServiceName, _ = flags.GetString("trace-service-name")
	}
	if flags.Changed("trace-sample-rate") {
		cfg.Tracing.SampleRate, _ = flags.GetFloat64("trace-sample-rate")
	}
	if flags.Changed("trace-insecure") {
		cfg.Tracing.Insecure, _ = flags.GetBool("trace-insecure")
	}
}

func displayHelp(cmd *cobra.Command) {
	_ = cmd.Help()
}
