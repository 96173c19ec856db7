// Package gatekeeper is a second, narrower comparator: instead of grading a
// candidate feature by feature against one reference, it fits a statistical
// model over a reference group and flags candidates that sit too far outside
// the group on a small set of load-bearing features.
package gatekeeper

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/farcloser/meristem"
)

// ErrNoReferences is returned by Fit when the reference set is empty.
var ErrNoReferences = errors.New("no reference records to fit")

// GoldenFeatures is the fixed subset the gatekeeper judges on.
var GoldenFeatures = []string{
	"bpm",
	"loudness",
	"true_peak",
	"dynamic_range",
	"low_energy",
	"mid_energy",
	"high_energy",
	"stereo_width",
}

// weights bias the distance and deviation scores toward mastering-critical
// features.
var weights = map[string]float64{
	"loudness":      1.5,
	"true_peak":     1.5,
	"dynamic_range": 1.2,
	"low_energy":    1.0,
	"mid_energy":    1.0,
	"high_energy":   1.0,
	"bpm":           0.8,
	"stereo_width":  0.8,
}

const (
	alertThreshold    = 2.0
	criticalThreshold = 3.0
)

// ExtractGoldenSubset analyzes a file restricted to the golden features.
func ExtractGoldenSubset(path string) (*meristem.FeatureRecord, error) {
	return meristem.Analyze(path, meristem.Options{
		Mode:     meristem.ModeCustom,
		Features: GoldenFeatures,
	})
}

type featureStats struct {
	mean float64
	std  float64
}

// Model holds the fitted reference group: per-feature mean and population
// std over the golden subset, plus the records themselves for nearest
// reference lookup.
type Model struct {
	references []*meristem.FeatureRecord
	stats      map[string]featureStats
}

// Fit builds a Model from a reference group.
func Fit(records []*meristem.FeatureRecord) (*Model, error) {
	if len(records) == 0 {
		return nil, ErrNoReferences
	}

	model := &Model{
		references: records,
		stats:      make(map[string]featureStats, len(GoldenFeatures)),
	}

	for _, name := range GoldenFeatures {
		var vals []float64

		for _, record := range records {
			if v, ok := record.Value(name); ok && !v.Categorical() {
				vals = append(vals, v.Number)
			}
		}

		if len(vals) == 0 {
			continue
		}

		var mean float64
		for _, v := range vals {
			mean += v
		}

		mean /= float64(len(vals))

		var variance float64
		for _, v := range vals {
			variance += (v - mean) * (v - mean)
		}

		variance /= float64(len(vals))

		model.stats[name] = featureStats{mean: mean, std: math.Sqrt(variance)}
	}

	return model, nil
}

// Deviation is one golden feature's distance from the reference group.
type Deviation struct {
	Feature  string  `json:"feature"`
	Z        float64 `json:"z"`
	Weighted float64 `json:"weighted"`
}

// Alert flags a deviation beyond the gate thresholds.
type Alert struct {
	Feature string          `json:"feature"`
	Status  meristem.Status `json:"status"`
	Message string          `json:"message"`
}

// Report is the outcome of gating one candidate.
type Report struct {
	Track            string      `json:"track"`
	NearestReference string      `json:"nearest_reference"`
	Deviations       []Deviation `json:"deviations"`
	Alerts           []Alert     `json:"alerts"`
}

// Check gates a candidate against the fitted group: weighted z-scores per
// golden feature, the nearest reference track by weighted distance, and
// alerts for features beyond the thresholds. Deviations come sorted by
// weighted magnitude, largest first.
func (m *Model) Check(record *meristem.FeatureRecord) *Report {
	report := &Report{Track: record.Track}

	for _, name := range GoldenFeatures {
		v, ok := record.Value(name)
		if !ok || v.Categorical() {
			continue
		}

		st, ok := m.stats[name]
		if !ok {
			continue
		}

		z := zscore(v.Number, st)

		report.Deviations = append(report.Deviations, Deviation{
			Feature:  name,
			Z:        z,
			Weighted: z * weights[name],
		})

		if abs := math.Abs(z); abs > alertThreshold {
			status := meristem.StatusWarning
			if abs > criticalThreshold {
				status = meristem.StatusCritical
			}

			report.Alerts = append(report.Alerts, Alert{
				Feature: name,
				Status:  status,
				Message: fmt.Sprintf("%s is %.1f standard deviations from the reference group (value %.2f, group mean %.2f)",
					name, z, v.Number, st.mean),
			})
		}
	}

	sort.SliceStable(report.Deviations, func(i, j int) bool {
		return math.Abs(report.Deviations[i].Weighted) > math.Abs(report.Deviations[j].Weighted)
	})

	report.NearestReference = m.nearest(record)

	return report
}

// nearest returns the reference track with the smallest weighted z-space
// distance to the candidate on the golden subset.
func (m *Model) nearest(record *meristem.FeatureRecord) string {
	best := ""
	bestDistance := math.Inf(1)

	for _, reference := range m.references {
		var sum float64

		var count int

		for _, name := range GoldenFeatures {
			cv, ok := record.Value(name)
			if !ok || cv.Categorical() {
				continue
			}

			rv, ok := reference.Value(name)
			if !ok || rv.Categorical() {
				continue
			}

			st, ok := m.stats[name]
			if !ok {
				continue
			}

			d := (zscore(cv.Number, st) - zscore(rv.Number, st)) * weights[name]
			sum += d * d
			count++
		}

		if count == 0 {
			continue
		}

		if distance := math.Sqrt(sum / float64(count)); distance < bestDistance {
			bestDistance = distance
			best = reference.Track
		}
	}

	return best
}

// zscore yields 0 when the group shows no dispersion; identical reference
// values cannot rank a deviation.
func zscore(v float64, st featureStats) float64 {
	if st.std == 0 {
		return 0
	}

	return (v - st.mean) / st.std
}
