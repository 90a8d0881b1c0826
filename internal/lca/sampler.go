package lca

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/embodiedcarbon/rasmi-lca/internal/material"
)

// sample draws n values with replacement from a filtered population.
//
// Every call builds a fresh generator from seed, so the i-th draw of
// any two calls sharing a seed comes from the same generator lineage.
// That per-call re-seeding is the common-random-numbers discipline: the
// intensity and factor draws for trial i are paired, and the estimator
// relies on that pairing. The same (population, n, seed) triple always
// yields the identical sequence.
func sample(values []float64, n int, seed int64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyPopulation
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = values[rng.Intn(len(values))]
	}
	return out, nil
}

// sampleMatrix stacks per-material draws into an n-by-Count matrix in
// catalog column order. The stacking owns no randomness; all draws use
// the same (n, seed) pair.
func sampleMatrix(populations map[material.Material][]float64, n int, seed int64) (*mat.Dense, error) {
	out := mat.NewDense(n, material.Count, nil)
	for j, m := range material.All() {
		column, err := sample(populations[m], n, seed)
		if err != nil {
			return nil, fmt.Errorf("sampling material %q: %w", m, err)
		}
		out.SetCol(j, column)
	}
	return out, nil
}
