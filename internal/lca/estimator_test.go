package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCombinePairedDot(t *testing.T) {
	intensity := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	factors := mat.NewDense(3, 2, []float64{
		10, 100,
		20, 200,
		30, 300,
	})

	out, err := combine(intensity, factors)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		1*10 + 2*100,
		3*20 + 4*200,
		5*30 + 6*300,
	}, out)
}

func TestCombineMatchesDiagonalOfOuterProduct(t *testing.T) {
	intensity := mat.NewDense(4, 3, []float64{
		0.5, 1.5, 2.5,
		3.5, 4.5, 5.5,
		6.5, 7.5, 8.5,
		9.5, 10.5, 11.5,
	})
	factors := mat.NewDense(4, 3, []float64{
		0.1, 0.2, 0.3,
		0.4, 0.5, 0.6,
		0.7, 0.8, 0.9,
		1.0, 1.1, 1.2,
	})

	out, err := combine(intensity, factors)
	require.NoError(t, err)

	// The per-row reduction must equal the diagonal of the full
	// intensity times factors-transposed product it replaces.
	var full mat.Dense
	full.Mul(intensity, factors.T())
	for i, v := range out {
		assert.InDelta(t, full.At(i, i), v, 1e-12, "row %d", i)
	}
}

func TestCombineShapeMismatch(t *testing.T) {
	tests := []struct {
		name      string
		intensity *mat.Dense
		factors   *mat.Dense
	}{
		{
			name:      "row count differs",
			intensity: mat.NewDense(3, 2, nil),
			factors:   mat.NewDense(4, 2, nil),
		},
		{
			name:      "column count differs",
			intensity: mat.NewDense(3, 2, nil),
			factors:   mat.NewDense(3, 3, nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := combine(tt.intensity, tt.factors)
			require.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}
