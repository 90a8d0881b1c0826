// Package main provides a tool that compiles the RASMI and emission
// factor Excel workbooks into the single-file JSON dataset consumed by
// rasmi-lca's -dataset flag.
//
// The compiled form loads orders of magnitude faster than the
// workbooks and pins an exact dataset snapshot for reproducible runs.
//
// Usage:
//
//	go run ./tools/compile-dataset -intensity rasmi.xlsx -factors factors.xlsx -out compiled.json
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/embodiedcarbon/rasmi-lca/internal/dataset"
	"github.com/embodiedcarbon/rasmi-lca/internal/material"
)

func main() {
	intensityPath := flag.String("intensity", "", "Path to RASMI material-intensity workbook (xlsx)")
	factorsPath := flag.String("factors", "", "Path to emission-factor workbook (xlsx)")
	outPath := flag.String("out", "compiled.json", "Output path for the compiled dataset")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *intensityPath == "" || *factorsPath == "" {
		fmt.Fprintln(os.Stderr, "compile-dataset: -intensity and -factors are required")
		flag.Usage()
		os.Exit(2)
	}

	store, err := dataset.LoadXLSX(*intensityPath, *factorsPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading workbooks")
	}

	for _, m := range material.All() {
		logger.Info().
			Str("material", string(m)).
			Int("intensity_rows", len(store.Intensity(m))).
			Int("factor_rows", len(store.Factors(m))).
			Msg("compiled material tables")
	}

	data, err := dataset.EncodeJSON(store)
	if err != nil {
		logger.Fatal().Err(err).Msg("encoding compiled dataset")
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("writing compiled dataset")
	}

	logger.Info().Str("path", *outPath).Int("bytes", len(data)).Msg("compiled dataset written")
}
