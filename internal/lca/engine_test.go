package lca

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/embodiedcarbon/rasmi-lca/internal/dataset"
	"github.com/embodiedcarbon/rasmi-lca/internal/material"
)

// newTestStore builds a store where every material carries the single
// key (residential, wood_frame, US) with zero intensity and a zero US
// factor, then applies per-material overrides. Overrides must keep the
// same key set, since the store validates index agreement.
func newTestStore(t *testing.T, intensityOverride map[material.Material][]dataset.IntensityRow, factorOverride map[material.Material][]dataset.FactorRow) *dataset.Store {
	t.Helper()

	intensity := make(map[material.Material][]dataset.IntensityRow)
	factors := make(map[material.Material][]dataset.FactorRow)
	for _, m := range material.All() {
		intensity[m] = []dataset.IntensityRow{
			{Function: "residential", Structure: "wood_frame", Geography: "US", ValueKgPerM2: 0},
		}
		factors[m] = []dataset.FactorRow{
			{Geographies: "US", ValueKgCO2ePerKg: 0},
		}
	}
	for m, rows := range intensityOverride {
		intensity[m] = rows
	}
	for m, rows := range factorOverride {
		factors[m] = rows
	}

	s, err := dataset.New(intensity, factors)
	require.NoError(t, err)
	return s
}

func TestEstimateDeterminism(t *testing.T) {
	s := newTestStore(t,
		map[material.Material][]dataset.IntensityRow{
			material.Concrete: {
				{Function: "residential", Structure: "wood_frame", Geography: "US", ValueKgPerM2: 300},
				{Function: "residential", Structure: "wood_frame", Geography: "US", ValueKgPerM2: 450},
				{Function: "residential", Structure: "wood_frame", Geography: "US", ValueKgPerM2: 520},
			},
		},
		map[material.Material][]dataset.FactorRow{
			material.Concrete: {
				{Geographies: "US", ValueKgCO2ePerKg: 0.10},
				{Geographies: "US", ValueKgCO2ePerKg: 0.14},
			},
		},
	)
	engine := NewEngine(s, zerolog.Nop())
	cfg := Config{Samples: 500, Seed: 12345}

	a, err := engine.Estimate("residential", "wood_frame", "US", cfg)
	require.NoError(t, err)
	b, err := engine.Estimate("residential", "wood_frame", "US", cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b, "independent calls with identical query and config must be bit-identical")
}

func TestEstimateOutputLength(t *testing.T) {
	s := newTestStore(t, nil, nil)
	engine := NewEngine(s, zerolog.Nop())

	for _, n := range []int{1, 7, 100, 4096} {
		out, err := engine.Estimate("residential", "wood_frame", "US", Config{Samples: n, Seed: 1})
		require.NoError(t, err)
		assert.Len(t, out, n)
	}
}

func TestEstimateUnknownKey(t *testing.T) {
	s := newTestStore(t, nil, nil)
	engine := NewEngine(s, zerolog.Nop())
	cfg := Config{Samples: 10, Seed: 1}

	_, err := engine.Estimate("hospital", "wood_frame", "US", cfg)
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = engine.Estimate("residential", "masonry", "US", cfg)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestEstimateNoApplicableFactor(t *testing.T) {
	// The intensity index knows geography NO but no factor row lists it.
	intensity := make(map[material.Material][]dataset.IntensityRow)
	factors := make(map[material.Material][]dataset.FactorRow)
	for _, m := range material.All() {
		intensity[m] = []dataset.IntensityRow{
			{Function: "residential", Structure: "wood_frame", Geography: "NO", ValueKgPerM2: 1},
		}
		factors[m] = []dataset.FactorRow{
			{Geographies: "US, CA", ValueKgCO2ePerKg: 1},
		}
	}
	s, err := dataset.New(intensity, factors)
	require.NoError(t, err)

	engine := NewEngine(s, zerolog.Nop())
	_, err = engine.Estimate("residential", "wood_frame", "NO", Config{Samples: 10, Seed: 1})
	require.ErrorIs(t, err, ErrNoApplicableFactor)
}

func TestEstimateInvalidConfig(t *testing.T) {
	s := newTestStore(t, nil, nil)
	engine := NewEngine(s, zerolog.Nop())

	_, err := engine.Estimate("residential", "wood_frame", "US", Config{Samples: 0, Seed: 1})
	require.Error(t, err)

	_, err = engine.Estimate("residential", "wood_frame", "US", Config{Samples: -5, Seed: 1})
	require.Error(t, err)

	_, err = engine.Estimate("residential", "wood_frame", "US", Config{Samples: 10, Seed: 1, XPSPathway: Pathway(9)})
	require.Error(t, err)
}

func TestEstimateEndToEndConcreteExample(t *testing.T) {
	s := newTestStore(t,
		map[material.Material][]dataset.IntensityRow{
			material.Concrete: {
				{Function: "residential", Structure: "wood_frame", Geography: "US", ValueKgPerM2: 10},
				{Function: "residential", Structure: "wood_frame", Geography: "US", ValueKgPerM2: 20},
			},
		},
		map[material.Material][]dataset.FactorRow{
			material.Concrete: {
				{Geographies: "US,CA", ValueKgCO2ePerKg: 0.1},
			},
		},
	)
	engine := NewEngine(s, zerolog.Nop())
	cfg := Config{Samples: 4, Seed: 77}

	out, err := engine.Estimate("residential", "wood_frame", "US", cfg)
	require.NoError(t, err)
	require.Len(t, out, 4)

	// Only concrete contributes: each trial is 10*0.1 or 20*0.1.
	for i, v := range out {
		assert.True(t, v == 1.0 || v == 2.0, "trial %d: got %v, want 1.0 or 2.0", i, v)
	}

	again, err := engine.Estimate("residential", "wood_frame", "US", cfg)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestEstimatePathwayFiltering(t *testing.T) {
	// CO2-route and HFC-route plastics factors are numerically
	// disjoint, so the output range reveals which rows were sampled.
	s := newTestStore(t,
		map[material.Material][]dataset.IntensityRow{
			material.Plastics: {
				{Function: "residential", Structure: "wood_frame", Geography: "US", ValueKgPerM2: 1},
			},
		},
		map[material.Material][]dataset.FactorRow{
			material.Plastics: {
				{Geographies: "US", Note: "XPS-CO2", ValueKgCO2ePerKg: 2.0},
				{Geographies: "US", Note: "XPS-CO2", ValueKgCO2ePerKg: 2.4},
				{Geographies: "US", Note: "XPS-HFC", ValueKgCO2ePerKg: 90.0},
				{Geographies: "US", Note: "XPS-HFC", ValueKgCO2ePerKg: 95.0},
			},
		},
	)
	engine := NewEngine(s, zerolog.Nop())

	co2, err := engine.Estimate("residential", "wood_frame", "US", Config{Samples: 200, Seed: 5, XPSPathway: PathwayXPSCO2})
	require.NoError(t, err)
	for i, v := range co2 {
		assert.LessOrEqual(t, v, 2.4, "trial %d sampled an HFC-route factor under the CO2 pathway", i)
		assert.GreaterOrEqual(t, v, 2.0)
	}

	hfc, err := engine.Estimate("residential", "wood_frame", "US", Config{Samples: 200, Seed: 5, XPSPathway: PathwayXPSHFC})
	require.NoError(t, err)
	for i, v := range hfc {
		assert.GreaterOrEqual(t, v, 90.0, "trial %d sampled a CO2-route factor under the HFC pathway", i)
		assert.LessOrEqual(t, v, 95.0)
	}
}

func TestCommonRandomNumbersPairingIsLoadBearing(t *testing.T) {
	// Intensity and factor populations with matching spreads: under the
	// shared seed both draws in a trial pick the same index, so the
	// product is always a "diagonal" pair. Independent seeds mix cheap
	// intensities with expensive factors and vice versa, changing the
	// variance of the combined sample.
	const n = 5000
	const seed = int64(100)

	pops := make(map[material.Material][]float64, material.Count)
	for _, m := range material.All() {
		pops[m] = []float64{0, 0}
	}
	pops[material.Steel] = []float64{1, 100}
	factorPops := make(map[material.Material][]float64, material.Count)
	for _, m := range material.All() {
		factorPops[m] = []float64{0, 0}
	}
	factorPops[material.Steel] = []float64{1, 100}

	intensityMat, err := sampleMatrix(pops, n, seed)
	require.NoError(t, err)

	pairedFactors, err := sampleMatrix(factorPops, n, seed)
	require.NoError(t, err)
	paired, err := combine(intensityMat, pairedFactors)
	require.NoError(t, err)

	independentFactors, err := sampleMatrix(factorPops, n, seed+1)
	require.NoError(t, err)
	independent, err := combine(intensityMat, independentFactors)
	require.NoError(t, err)

	pairedVar := stat.Variance(paired, nil)
	independentVar := stat.Variance(independent, nil)

	// Beyond floating-point noise: the CRN pairing concentrates mass on
	// {1, 10000}, independent seeding spreads it over {1, 100, 10000}.
	assert.Greater(t, absDiff(pairedVar, independentVar), 1000.0,
		"paired variance %v vs independent variance %v", pairedVar, independentVar)
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
