package dataset

import (
	"errors"
	"fmt"

	"github.com/embodiedcarbon/rasmi-lca/internal/material"
)

// ErrIndexMismatch is returned by New when a material's intensity table
// does not cover the same (function, structure, geography) key set as
// the concrete table. The query levels are derived from concrete alone,
// so a divergent index would make queries against that material
// misbehave silently; it is rejected at construction instead.
var ErrIndexMismatch = errors.New("dataset: material index mismatch")

type key struct {
	function  string
	structure string
	geography string
}

// Store is the immutable population store for one loaded dataset pair.
// Build it with New (or one of the loaders); accessors return views
// that callers must treat as read-only.
type Store struct {
	intensity map[material.Material][]IntensityRow
	factors   map[material.Material][]FactorRow

	// Distinct index levels, derived from the concrete table in first
	// appearance order.
	functions   []string
	structures  []string
	geographies []string
}

// New builds a Store from per-material tables and validates it:
// all catalog materials must be present and nonempty in both datasets,
// and every material's intensity key set must equal concrete's.
func New(intensity map[material.Material][]IntensityRow, factors map[material.Material][]FactorRow) (*Store, error) {
	for _, m := range material.All() {
		if len(intensity[m]) == 0 {
			return nil, fmt.Errorf("dataset: no intensity rows for material %q", m)
		}
		if len(factors[m]) == 0 {
			return nil, fmt.Errorf("dataset: no emission-factor rows for material %q", m)
		}
	}

	s := &Store{
		intensity: make(map[material.Material][]IntensityRow, material.Count),
		factors:   make(map[material.Material][]FactorRow, material.Count),
	}
	for _, m := range material.All() {
		s.intensity[m] = append([]IntensityRow(nil), intensity[m]...)
		s.factors[m] = append([]FactorRow(nil), factors[m]...)
	}

	reference := keySet(s.intensity[material.Concrete])
	for _, m := range material.All() {
		if m == material.Concrete {
			continue
		}
		if err := sameKeySet(reference, keySet(s.intensity[m])); err != nil {
			return nil, fmt.Errorf("%w: material %q vs concrete: %v", ErrIndexMismatch, m, err)
		}
	}

	s.functions, s.structures, s.geographies = indexLevels(s.intensity[material.Concrete])
	return s, nil
}

// Intensity returns the material-intensity population for m. The
// returned slice is shared; callers must not modify it.
func (s *Store) Intensity(m material.Material) []IntensityRow {
	return s.intensity[m]
}

// Factors returns the emission-factor population for m. The returned
// slice is shared; callers must not modify it.
func (s *Store) Factors(m material.Material) []FactorRow {
	return s.factors[m]
}

// Functions returns the distinct building-function codes in the index.
func (s *Store) Functions() []string { return append([]string(nil), s.functions...) }

// Structures returns the distinct structural-system codes in the index.
func (s *Store) Structures() []string { return append([]string(nil), s.structures...) }

// Geographies returns the distinct geography codes in the index.
func (s *Store) Geographies() []string { return append([]string(nil), s.geographies...) }

func keySet(rows []IntensityRow) map[key]struct{} {
	set := make(map[key]struct{}, len(rows))
	for _, r := range rows {
		set[key{r.Function, r.Structure, r.Geography}] = struct{}{}
	}
	return set
}

func sameKeySet(a, b map[key]struct{}) error {
	for k := range a {
		if _, ok := b[k]; !ok {
			return fmt.Errorf("missing key (%s, %s, %s)", k.function, k.structure, k.geography)
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			return fmt.Errorf("extra key (%s, %s, %s)", k.function, k.structure, k.geography)
		}
	}
	return nil
}

func indexLevels(rows []IntensityRow) (functions, structures, geographies []string) {
	seenF := map[string]bool{}
	seenS := map[string]bool{}
	seenG := map[string]bool{}
	for _, r := range rows {
		if !seenF[r.Function] {
			seenF[r.Function] = true
			functions = append(functions, r.Function)
		}
		if !seenS[r.Structure] {
			seenS[r.Structure] = true
			structures = append(structures, r.Structure)
		}
		if !seenG[r.Geography] {
			seenG[r.Geography] = true
			geographies = append(geographies, r.Geography)
		}
	}
	return functions, structures, geographies
}
