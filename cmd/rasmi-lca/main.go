// Command rasmi-lca estimates the distribution of embodied-carbon
// emissions per square meter for a building archetype by Monte Carlo
// resampling of the RASMI material-intensity dataset combined with
// A1-A3 LCA emission factors.
//
// Usage:
//
//	rasmi-lca -intensity rasmi.xlsx -factors factors.xlsx \
//	    -function RS -structure T -geography US
//
// or, with a compiled dataset produced by tools/compile-dataset:
//
//	rasmi-lca -dataset compiled.json -function RS -structure T -geography US
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/embodiedcarbon/rasmi-lca/internal/dataset"
	"github.com/embodiedcarbon/rasmi-lca/internal/lca"
	"github.com/embodiedcarbon/rasmi-lca/internal/report"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "rasmi-lca: %v\n", err)
		os.Exit(2)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rasmi-lca: invalid log level %q\n", cfg.LogLevel)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("estimation failed")
		os.Exit(1)
	}
}

func run(cfg Config, logger zerolog.Logger) error {
	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	sampling, err := cfg.samplingConfig()
	if err != nil {
		return err
	}

	engine := lca.NewEngine(store, logger)
	samples, err := engine.Estimate(cfg.Function, cfg.Structure, cfg.Geography, sampling)
	if err != nil {
		return err
	}

	summary, err := report.Summarize(cfg.Function, cfg.Structure, cfg.Geography, samples)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		data, err := summary.JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	default:
		fmt.Print(summary.Text())
	}
	return nil
}

func loadStore(cfg Config, logger zerolog.Logger) (*dataset.Store, error) {
	if cfg.DatasetPath != "" {
		logger.Info().Str("path", cfg.DatasetPath).Msg("loading compiled dataset")
		return dataset.LoadJSON(cfg.DatasetPath)
	}
	return dataset.LoadXLSX(cfg.IntensityPath, cfg.FactorsPath, logger)
}
