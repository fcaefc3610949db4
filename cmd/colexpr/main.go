// Command colexpr evaluates vectorized expressions over columns described
// in a YAML file and prints the results.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log/level"
	dslog "github.com/grafana/dskit/log"
	"github.com/prometheus/client_golang/prometheus"

	util_log "github.com/grafana/colexpr/pkg/util/log"
)

// Config holds the command line configuration.
type Config struct {
	InputFile   string
	Concurrency int

	LogLevel  dslog.Level
	LogFormat string
}

// RegisterFlags registers the configuration flags on f.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&c.InputFile, "input.file", "", "YAML file describing the expressions to evaluate.")
	f.IntVar(&c.Concurrency, "concurrency", 4, "Maximum number of expressions evaluated at the same time.")
	f.StringVar(&c.LogFormat, "log.format", "logfmt", "Output log messages in the given format. Valid formats: [logfmt, json]")
	c.LogLevel.RegisterFlags(f)
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("-input.file is required")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("-concurrency must be positive, got %d", c.Concurrency)
	}
	if c.LogFormat != "logfmt" && c.LogFormat != "json" {
		return fmt.Errorf("invalid -log.format %q", c.LogFormat)
	}
	return nil
}

func main() {
	var cfg Config
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	util_log.InitLogger(cfg.LogFormat, cfg.LogLevel, reg)

	input, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		level.Error(util_log.Logger).Log("msg", "failed to read input", "file", cfg.InputFile, "err", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, input, cfg.Concurrency, reg); err != nil {
		level.Error(util_log.Logger).Log("msg", "evaluation failed", "err", err)
		os.Exit(1)
	}
}
