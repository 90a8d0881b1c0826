package lca

import "errors"

// Estimation failures are deterministic input-validation conditions,
// never transient faults; callers match them with errors.Is. None of
// them may be coerced into an empty or zero result, since that would
// corrupt the estimate without signaling it.
var (
	// ErrKeyNotFound means the requested (function, structure,
	// geography) triple is absent from a material's intensity index.
	ErrKeyNotFound = errors.New("lca: query key not found")

	// ErrNoApplicableFactor means no emission-factor row survives
	// geography and pathway filtering for a material.
	ErrNoApplicableFactor = errors.New("lca: no applicable emission factor")

	// ErrEmptyPopulation means sampling was attempted on zero rows.
	// Upstream filters should have rejected the query already; this is
	// the defensive backstop.
	ErrEmptyPopulation = errors.New("lca: empty population")

	// ErrShapeMismatch means the intensity and factor sample matrices
	// disagree in shape before combination.
	ErrShapeMismatch = errors.New("lca: sample matrix shape mismatch")
)
