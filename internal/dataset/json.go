package dataset

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/embodiedcarbon/rasmi-lca/internal/material"
)

// Compiled dataset format: a single JSON document holding both
// populations, produced by tools/compile-dataset from the Excel
// workbook pair. It loads much faster than the workbooks and is the
// preferred distribution form for pinned dataset snapshots.
type document struct {
	Materials map[material.Material]materialTables `json:"materials"`
}

type materialTables struct {
	Intensity []IntensityRow `json:"intensity"`
	Factors   []FactorRow    `json:"factors"`
}

// EncodeJSON serializes the store into the compiled dataset format.
func EncodeJSON(s *Store) ([]byte, error) {
	doc := document{Materials: make(map[material.Material]materialTables, material.Count)}
	for _, m := range material.All() {
		doc.Materials[m] = materialTables{
			Intensity: s.Intensity(m),
			Factors:   s.Factors(m),
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("dataset: encoding compiled dataset: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a compiled dataset document and builds a validated
// Store from it.
func DecodeJSON(data []byte) (*Store, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dataset: decoding compiled dataset: %w", err)
	}

	intensity := make(map[material.Material][]IntensityRow, material.Count)
	factors := make(map[material.Material][]FactorRow, material.Count)
	for m, tables := range doc.Materials {
		if !material.Valid(m) {
			return nil, fmt.Errorf("dataset: compiled dataset has unknown material %q", m)
		}
		intensity[m] = tables.Intensity
		factors[m] = tables.Factors
	}
	return New(intensity, factors)
}

// LoadJSON reads a compiled dataset file from disk.
func LoadJSON(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading compiled dataset: %w", err)
	}
	return DecodeJSON(data)
}
