package lca

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// combine reduces the paired sample matrices to the emissions sample:
// for each trial row i, the dot product of the intensity row and the
// factor row, summed across materials.
//
// This is the diagonal of intensity times factors transposed, computed
// directly as per-row dot products. Materializing the full product
// would cost O(n^2 m), and its off-diagonal entries mix draws from
// different trials, which have no meaning under the common-random-
// numbers pairing.
func combine(intensity, factors *mat.Dense) ([]float64, error) {
	in, im := intensity.Dims()
	fn, fm := factors.Dims()
	if in != fn || im != fm {
		return nil, fmt.Errorf("%w: intensity %dx%d, factors %dx%d", ErrShapeMismatch, in, im, fn, fm)
	}

	out := make([]float64, in)
	for i := range out {
		out[i] = floats.Dot(intensity.RawRowView(i), factors.RawRowView(i))
	}
	return out, nil
}
