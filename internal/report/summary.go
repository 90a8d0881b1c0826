// Package report turns the raw emissions sample produced by the
// estimation engine into something a human or a downstream tool can
// consume: summary statistics, percentiles, and a JSON rendering. The
// engine's contract ends at the sample vector; everything here is
// presentation.
package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the outcome of one estimation run.
type Summary struct {
	RunID     string `json:"run_id"`
	Function  string `json:"function"`
	Structure string `json:"structure"`
	Geography string `json:"geography"`
	Samples   int    `json:"samples"`

	// All emission statistics are kg CO2e per m2 of floor area.
	Mean   float64     `json:"mean_kgco2e_per_m2"`
	StdDev float64     `json:"stddev_kgco2e_per_m2"`
	Min    float64     `json:"min_kgco2e_per_m2"`
	Max    float64     `json:"max_kgco2e_per_m2"`
	P      Percentiles `json:"percentiles"`
}

// Percentiles are empirical quantiles of the emissions sample.
type Percentiles struct {
	P5  float64 `json:"p5"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P95 float64 `json:"p95"`
}

// Summarize computes summary statistics for one emissions sample. The
// input slice is not modified.
func Summarize(function, structure, geography string, samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, errors.New("report: cannot summarize an empty sample")
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	return Summary{
		RunID:     uuid.New().String(),
		Function:  function,
		Structure: structure,
		Geography: geography,
		Samples:   len(samples),
		Mean:      mean,
		StdDev:    std,
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
		P: Percentiles{
			P5:  stat.Quantile(0.05, stat.Empirical, sorted, nil),
			P25: stat.Quantile(0.25, stat.Empirical, sorted, nil),
			P50: stat.Quantile(0.50, stat.Empirical, sorted, nil),
			P75: stat.Quantile(0.75, stat.Empirical, sorted, nil),
			P95: stat.Quantile(0.95, stat.Empirical, sorted, nil),
		},
	}, nil
}

// JSON renders the summary as indented JSON.
func (s Summary) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: encoding summary: %w", err)
	}
	return data, nil
}

// Text renders the summary for terminal output.
func (s Summary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Embodied emissions for %s / %s / %s (run %s)\n", s.Function, s.Structure, s.Geography, s.RunID)
	fmt.Fprintf(&b, "  samples: %d\n", s.Samples)
	fmt.Fprintf(&b, "  mean:    %.2f kgCO2e/m2 (stddev %.2f)\n", s.Mean, s.StdDev)
	fmt.Fprintf(&b, "  range:   %.2f .. %.2f kgCO2e/m2\n", s.Min, s.Max)
	fmt.Fprintf(&b, "  p5/p25/p50/p75/p95: %.2f / %.2f / %.2f / %.2f / %.2f\n",
		s.P.P5, s.P.P25, s.P.P50, s.P.P75, s.P.P95)
	return b.String()
}
