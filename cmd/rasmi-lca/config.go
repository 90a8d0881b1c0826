package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/embodiedcarbon/rasmi-lca/internal/lca"
)

// Config holds the CLI settings. Values come from defaults, then an
// optional YAML config file, then command-line flags, in increasing
// precedence.
type Config struct {
	// Dataset sources: either a compiled JSON dataset, or the two
	// Excel workbooks.
	DatasetPath   string `yaml:"dataset_path"`
	IntensityPath string `yaml:"intensity_path"`
	FactorsPath   string `yaml:"factors_path"`

	// Query.
	Function  string `yaml:"function"`
	Structure string `yaml:"structure"`
	Geography string `yaml:"geography"`

	// Sampling.
	Samples    int    `yaml:"samples"`
	Seed       int64  `yaml:"seed"`
	XPSPathway string `yaml:"xps_pathway"` // "co2" or "hfc"

	// Output.
	Format   string `yaml:"format"` // "text" or "json"
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	d := lca.DefaultConfig()
	return Config{
		Samples:    d.Samples,
		Seed:       d.Seed,
		XPSPathway: "co2",
		Format:     "text",
		LogLevel:   "info",
	}
}

// parseConfig resolves the final configuration from args.
func parseConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet("rasmi-lca", flag.ContinueOnError)

	d := defaultConfig()
	configPath := fs.String("config", "", "Path to YAML config file")
	dataset := fs.String("dataset", d.DatasetPath, "Path to compiled JSON dataset")
	intensity := fs.String("intensity", d.IntensityPath, "Path to RASMI material-intensity workbook (xlsx)")
	factors := fs.String("factors", d.FactorsPath, "Path to emission-factor workbook (xlsx)")
	function := fs.String("function", d.Function, "Building function code (e.g. RS)")
	structure := fs.String("structure", d.Structure, "Structural system code (e.g. T)")
	geography := fs.String("geography", d.Geography, "Geography code (e.g. US)")
	samples := fs.Int("samples", d.Samples, "Monte Carlo sample count")
	seed := fs.Int64("seed", d.Seed, "Common-random-numbers seed")
	xps := fs.String("xps-pathway", d.XPSPathway, "XPS production pathway for plastics factors: co2 or hfc")
	format := fs.String("format", d.Format, "Output format: text or json")
	logLevel := fs.String("log-level", d.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := d
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Flags set explicitly on the command line override file values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dataset":
			cfg.DatasetPath = *dataset
		case "intensity":
			cfg.IntensityPath = *intensity
		case "factors":
			cfg.FactorsPath = *factors
		case "function":
			cfg.Function = *function
		case "structure":
			cfg.Structure = *structure
		case "geography":
			cfg.Geography = *geography
		case "samples":
			cfg.Samples = *samples
		case "seed":
			cfg.Seed = *seed
		case "xps-pathway":
			cfg.XPSPathway = *xps
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DatasetPath == "" && (c.IntensityPath == "" || c.FactorsPath == "") {
		return fmt.Errorf("either -dataset or both -intensity and -factors are required")
	}
	if c.Function == "" || c.Structure == "" || c.Geography == "" {
		return fmt.Errorf("-function, -structure and -geography are required")
	}
	if _, err := c.pathway(); err != nil {
		return err
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	return nil
}

func (c Config) pathway() (lca.Pathway, error) {
	switch strings.ToLower(c.XPSPathway) {
	case "co2":
		return lca.PathwayXPSCO2, nil
	case "hfc":
		return lca.PathwayXPSHFC, nil
	default:
		return 0, fmt.Errorf("unknown XPS pathway %q (want co2 or hfc)", c.XPSPathway)
	}
}

// samplingConfig converts the CLI settings into the engine's immutable
// per-call configuration.
func (c Config) samplingConfig() (lca.Config, error) {
	p, err := c.pathway()
	if err != nil {
		return lca.Config{}, err
	}
	cfg := lca.Config{Samples: c.Samples, Seed: c.Seed, XPSPathway: p}
	return cfg, cfg.Validate()
}
