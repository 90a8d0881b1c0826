package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tealeg/xlsx"

	"github.com/embodiedcarbon/rasmi-lca/internal/material"
)

// Worksheet layout expectations, matching the published RASMI and
// compiled ecoinvent workbooks: one sheet per material in each file.
//
// Intensity sheets: columns 0-2 are the function / structure /
// geography index, and the observed kg/m2 values live in the column
// whose header equals the material name. Factor sheets: columns are
// located by header name.
const (
	factorGeosHeader  = "geos"
	factorNoteHeader  = "note"
	factorValueHeader = "kgco2e/kg"
)

// LoadXLSX reads the intensity and emission-factor workbooks and builds
// a validated Store. Both workbooks must contain one sheet per catalog
// material.
func LoadXLSX(intensityPath, factorsPath string, logger zerolog.Logger) (*Store, error) {
	logger.Info().Str("path", intensityPath).Msg("importing material intensity workbook")
	intensityFile, err := xlsx.OpenFile(intensityPath)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening intensity workbook: %w", err)
	}

	intensity := make(map[material.Material][]IntensityRow, material.Count)
	for _, m := range material.All() {
		rows, err := readIntensitySheet(intensityFile, m)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("material", string(m)).Int("rows", len(rows)).Msg("intensity sheet loaded")
		intensity[m] = rows
	}

	logger.Info().Str("path", factorsPath).Msg("importing emission factor workbook")
	factorsFile, err := xlsx.OpenFile(factorsPath)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening emission factor workbook: %w", err)
	}

	factors := make(map[material.Material][]FactorRow, material.Count)
	for _, m := range material.All() {
		rows, err := readFactorSheet(factorsFile, m)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("material", string(m)).Int("rows", len(rows)).Msg("factor sheet loaded")
		factors[m] = rows
	}

	return New(intensity, factors)
}

func readIntensitySheet(f *xlsx.File, m material.Material) ([]IntensityRow, error) {
	s, ok := f.Sheet[string(m)]
	if !ok {
		return nil, fmt.Errorf("dataset: intensity workbook has no sheet %q", m)
	}
	if s.MaxRow < 2 {
		return nil, fmt.Errorf("dataset: intensity sheet %q has no data rows", m)
	}

	// The value column carries the material name as its header.
	valueCol := -1
	for c := 3; c < s.MaxCol; c++ {
		if strings.EqualFold(strings.TrimSpace(s.Cell(0, c).Value), string(m)) {
			valueCol = c
			break
		}
	}
	if valueCol < 0 {
		return nil, fmt.Errorf("dataset: intensity sheet %q has no %q value column", m, m)
	}

	var rows []IntensityRow
	for r := 1; r < s.MaxRow; r++ {
		function := strings.TrimSpace(s.Cell(r, 0).Value)
		structure := strings.TrimSpace(s.Cell(r, 1).Value)
		geography := strings.TrimSpace(s.Cell(r, 2).Value)
		if function == "" && structure == "" && geography == "" {
			continue // trailing blank row
		}
		raw := strings.TrimSpace(s.Cell(r, valueCol).Value)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: intensity sheet %q row %d: bad value %q: %w", m, r+1, raw, err)
		}
		rows = append(rows, IntensityRow{
			Function:     function,
			Structure:    structure,
			Geography:    geography,
			ValueKgPerM2: v,
		})
	}
	return rows, nil
}

func readFactorSheet(f *xlsx.File, m material.Material) ([]FactorRow, error) {
	s, ok := f.Sheet[string(m)]
	if !ok {
		return nil, fmt.Errorf("dataset: emission factor workbook has no sheet %q", m)
	}
	if s.MaxRow < 2 {
		return nil, fmt.Errorf("dataset: factor sheet %q has no data rows", m)
	}

	geosCol, noteCol, valueCol := -1, -1, -1
	for c := 0; c < s.MaxCol; c++ {
		switch strings.ToLower(strings.TrimSpace(s.Cell(0, c).Value)) {
		case factorGeosHeader:
			geosCol = c
		case factorNoteHeader:
			noteCol = c
		case factorValueHeader:
			valueCol = c
		}
	}
	if geosCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("dataset: factor sheet %q missing %q or %q column", m, factorGeosHeader, factorValueHeader)
	}

	var rows []FactorRow
	for r := 1; r < s.MaxRow; r++ {
		geos := strings.TrimSpace(s.Cell(r, geosCol).Value)
		if geos == "" {
			continue // blank or annotation-only row
		}
		raw := strings.TrimSpace(s.Cell(r, valueCol).Value)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: factor sheet %q row %d: bad value %q: %w", m, r+1, raw, err)
		}
		row := FactorRow{Geographies: geos, ValueKgCO2ePerKg: v}
		if noteCol >= 0 {
			row.Note = strings.TrimSpace(s.Cell(r, noteCol).Value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
