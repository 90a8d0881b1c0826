package lca

import "fmt"

// Pathway selects the extruded-polystyrene production route used when
// filtering plastics emission factors. Factor rows tagged with the
// rejected route are dropped; rows with any other note are kept.
type Pathway int

const (
	// PathwayXPSCO2 keeps CO2-blown XPS factors and drops HFC-blown
	// ones. This is the default.
	PathwayXPSCO2 Pathway = iota

	// PathwayXPSHFC keeps HFC-blown XPS factors and drops CO2-blown
	// ones.
	PathwayXPSHFC
)

// Factor-note tags distinguishing the two XPS production routes in the
// ecoinvent-derived factor dataset.
const (
	noteXPSCO2 = "XPS-CO2"
	noteXPSHFC = "XPS-HFC"
)

func (p Pathway) String() string {
	switch p {
	case PathwayXPSCO2:
		return "xps-co2"
	case PathwayXPSHFC:
		return "xps-hfc"
	default:
		return fmt.Sprintf("pathway(%d)", int(p))
	}
}

// Config carries the sampling parameters for one estimation call. It is
// an immutable value passed per call; concurrent calls with their own
// Config values are independent.
type Config struct {
	// Samples is the Monte Carlo sample count n. Output length always
	// equals Samples.
	Samples int

	// Seed initializes every per-material draw in a call. Sharing one
	// seed across all draws is the common-random-numbers discipline the
	// combination step depends on.
	Seed int64

	// XPSPathway disambiguates plastics factor rows.
	XPSPathway Pathway
}

// DefaultConfig returns the sampling parameters used for published
// RASMI estimates: 10000 samples, seed 100, CO2-blown XPS.
func DefaultConfig() Config {
	return Config{Samples: 10000, Seed: 100, XPSPathway: PathwayXPSCO2}
}

// Validate rejects configurations that cannot produce a meaningful
// sample.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("lca: sample count must be positive, got %d", c.Samples)
	}
	if c.XPSPathway != PathwayXPSCO2 && c.XPSPathway != PathwayXPSHFC {
		return fmt.Errorf("lca: unknown XPS pathway %d", int(c.XPSPathway))
	}
	return nil
}
