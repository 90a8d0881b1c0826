package lca

import (
	"fmt"

	"github.com/embodiedcarbon/rasmi-lca/internal/dataset"
	"github.com/embodiedcarbon/rasmi-lca/internal/material"
)

// filterIntensity reduces one material's intensity population to the
// rows whose composite key equals (function, structure, geography) and
// returns their value column. The multiset of values for a key is what
// the sampler resamples from, so multiplicity is preserved.
func filterIntensity(s *dataset.Store, m material.Material, function, structure, geography string) ([]float64, error) {
	var values []float64
	for _, r := range s.Intensity(m) {
		if r.Function == function && r.Structure == structure && r.Geography == geography {
			values = append(values, r.ValueKgPerM2)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: material %q has no rows for (%s, %s, %s)",
			ErrKeyNotFound, m, function, structure, geography)
	}
	return values, nil
}

// filterFactors reduces one material's emission-factor population to
// the rows applicable to the given geography, then, for plastics only,
// drops rows whose pathway note contradicts the configured XPS route.
// The pathway filter runs strictly after geography filtering.
func filterFactors(s *dataset.Store, m material.Material, geography string, pathway Pathway) ([]float64, error) {
	var rows []dataset.FactorRow
	for _, r := range s.Factors(m) {
		if r.AppliesTo(geography) {
			rows = append(rows, r)
		}
	}

	if m == material.Plastics {
		kept := rows[:0]
		for _, r := range rows {
			switch {
			case pathway == PathwayXPSCO2 && r.Note == noteXPSHFC:
			case pathway == PathwayXPSHFC && r.Note == noteXPSCO2:
			default:
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: material %q, geography %q, pathway %s",
			ErrNoApplicableFactor, m, geography, pathway)
	}

	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.ValueKgCO2ePerKg
	}
	return values, nil
}
