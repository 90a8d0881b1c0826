// Package dataset holds the two resampling populations the estimator
// draws from: per-material building material intensities (RASMI) and
// per-material A1-A3 life-cycle emission factors.
//
// A Store is built once at startup from an Excel workbook pair or a
// compiled JSON file and is read-only afterwards. Query and sampling
// code derives filtered views from it; nothing here is mutated after
// construction, so a single Store is safe to share across concurrent
// estimation calls.
package dataset

import "strings"

// IntensityRow is one observed building case: the quantity of a single
// material used per square meter of floor area, keyed by the building's
// function, structural system, and geography.
type IntensityRow struct {
	Function     string  `json:"function"`
	Structure    string  `json:"structure"`
	Geography    string  `json:"geography"`
	ValueKgPerM2 float64 `json:"kg_per_m2"`
}

// FactorRow is one candidate emission factor for a material.
//
// Geographies is the raw comma-separated list of geography codes the
// factor applies to, exactly as it appears in the source dataset. Note
// is a free-form production-pathway tag; for plastics the values
// "XPS-CO2" and "XPS-HFC" distinguish the two blowing-agent routes.
type FactorRow struct {
	Geographies      string  `json:"geos"`
	Note             string  `json:"note,omitempty"`
	ValueKgCO2ePerKg float64 `json:"kgco2e_per_kg"`
}

// GeographyList parses the Geographies field into individual codes,
// trimming whitespace around each comma-separated element. Empty
// elements are dropped.
func (r FactorRow) GeographyList() []string {
	parts := strings.Split(r.Geographies, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// AppliesTo reports whether the factor row is valid for the given
// geography code. Matching is element-exact: "US" does not match a row
// listing only "USA".
func (r FactorRow) AppliesTo(geography string) bool {
	for _, g := range r.GeographyList() {
		if g == geography {
			return true
		}
	}
	return false
}
