package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dimonomid/rocstr/benchsuite"
	"github.com/dimonomid/rocstr/log"
	"github.com/dimonomid/rocstr/version"
	"github.com/juju/errors"
	"github.com/spf13/pflag"
)

func main() {
	if err := main2(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err.Error())
		os.Exit(1)
	}
}

func main2(args []string, out io.Writer) error {
	defaults := benchsuite.DefaultConfig()

	flags := pflag.NewFlagSet("rocbench", pflag.ContinueOnError)

	var (
		flagConfig    = flags.StringP("config", "c", "", "YAML config file; flags given explicitly override its values")
		flagFilters   = flags.StringArrayP("filter", "f", nil, "Glob pattern for the case names, like 'concat/rocstr*/**'; can be given multiple times")
		flagGroups    = flags.StringSlice("groups", nil, "Groups to run, comma-separated: clone, from_str, concat, from_int")
		flagSizes     = flags.IntSlice("sizes", defaults.Sizes, "Sample sizes in bytes")
		flagSeed      = flags.Int64("seed", defaults.Seed, "Seed for the sample text")
		flagBenchTime = flags.Duration("benchtime", defaults.BenchTime, "Run time of every case")
		flagFormat    = flags.String("format", "table", "Output format: table or yaml")
		flagInspect   = flags.String("inspect", "", "Instead of benchmarking, show how the given text is held by RocStr of various capacities")
		flagLogLevel  = flags.String("loglevel", "warning", "Valid values are: error, warning, info, verbose1, verbose2 or verbose3")
		flagVersion   = flags.Bool("version", false, "Print version and exit")
	)

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}

		return errors.Trace(err)
	}

	if *flagVersion {
		fmt.Fprint(out, version.VersionFullDescr())
		return nil
	}

	logLevel, err := log.ParseLevel(*flagLogLevel)
	if err != nil {
		return errors.Annotatef(err, "--loglevel")
	}

	logger := log.NewLogger(logLevel).WithNamespaceAppended("rocbench")

	if flags.Changed("inspect") {
		return errors.Trace(inspect(out, *flagInspect, *flagFormat))
	}

	cfg := defaults
	if *flagConfig != "" {
		loaded, err := benchsuite.LoadConfigFromFile(*flagConfig)
		if err != nil {
			return errors.Trace(err)
		}

		cfg = *loaded
		logger.Infof("Loaded config from %s", *flagConfig)
	}

	if flags.Changed("filter") {
		cfg.Filters = *flagFilters
	}
	if flags.Changed("groups") {
		cfg.Groups = *flagGroups
	}
	if flags.Changed("sizes") {
		cfg.Sizes = *flagSizes
	}
	if flags.Changed("seed") {
		cfg.Seed = *flagSeed
	}
	if flags.Changed("benchtime") {
		cfg.BenchTime = *flagBenchTime
	}

	write, err := resultWriter(*flagFormat)
	if err != nil {
		return errors.Trace(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := benchsuite.Run(ctx, cfg, logger)

	return errors.Trace(writeResults(out, write, results, err, logger))
}

// writeResults writes the results of a run which ended with runErr. Even if
// the run failed (e.g. after Ctrl+C), whatever results it has are still
// written; runErr is returned then, and a write error is only logged.
func writeResults(
	out io.Writer,
	write func(w io.Writer, results []benchsuite.Result) error,
	results []benchsuite.Result,
	runErr error,
	logger *log.Logger,
) error {
	if runErr == nil {
		return errors.Trace(write(out, results))
	}

	if len(results) > 0 {
		if err := write(out, results); err != nil {
			logger.Errorf("Writing %d partial results: %s", len(results), err)
		}
	}

	return errors.Trace(runErr)
}

func resultWriter(format string) (func(w io.Writer, results []benchsuite.Result) error, error) {
	switch format {
	case "table":
		return benchsuite.WriteTable, nil
	case "yaml":
		return benchsuite.WriteYAML, nil
	}

	return nil, errors.NotValidf("--format %q, try table or yaml", format)
}

func inspect(out io.Writer, text, format string) error {
	inspections, err := benchsuite.Inspect(text, benchsuite.InspectCapacities)
	if err != nil {
		return errors.Trace(err)
	}

	switch format {
	case "table":
		return errors.Trace(benchsuite.WriteInspections(out, inspections))
	case "yaml":
		return errors.Trace(benchsuite.WriteInspectionsYAML(out, inspections))
	}

	return errors.NotValidf("--format %q, try table or yaml", format)
}
