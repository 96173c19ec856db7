package meristem

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregate folds a set of track records into a group Profile: per-feature
// mean, population std, min, max and median for numeric features, and the
// most frequent label for categorical ones. Records missing a feature
// simply do not contribute to it. An empty or nil input yields an empty
// Profile.
func Aggregate(records []*FeatureRecord) Profile {
	numbers := map[string][]float64{}
	labels := map[string]map[string]int{}

	for _, record := range records {
		if record == nil {
			continue
		}

		for name, v := range record.Features {
			if v.Categorical() {
				if labels[name] == nil {
					labels[name] = map[string]int{}
				}

				labels[name][v.Label]++

				continue
			}

			numbers[name] = append(numbers[name], v.Number)
		}
	}

	profile := make(Profile, len(numbers)+len(labels))

	for name, vals := range numbers {
		sorted := make([]float64, len(vals))
		copy(sorted, vals)
		sort.Float64s(sorted)

		profile[name] = Stats{
			Mean:   stat.Mean(vals, nil),
			Std:    populationStd(vals),
			Min:    floats.Min(sorted),
			Max:    floats.Max(sorted),
			Median: median(sorted),
		}
	}

	for name, counts := range labels {
		profile[name] = Stats{Mode: mode(counts)}
	}

	return profile
}

// populationStd divides by n, not n-1, so a single record yields 0.
func populationStd(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}

	return stat.PopStdDev(vals, nil)
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode picks the most frequent label; ties break toward the
// lexicographically smallest so aggregation stays deterministic.
func mode(counts map[string]int) string {
	var best string

	bestCount := -1

	for label, count := range counts {
		if count > bestCount || (count == bestCount && label < best) {
			best = label
			bestCount = count
		}
	}

	return best
}
