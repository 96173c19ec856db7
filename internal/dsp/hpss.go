package dsp

import "sort"

const hpssKernel = 17 // median filter length, matches common practice

// HPSSPower splits the spectrogram into harmonic and percussive components
// by median filtering (horizontal for harmonic, vertical for percussive) and
// returns the total power attributed to each.
//
// With margin == 1 the split uses soft Wiener masks; a margin above 1
// applies hard masks that only count bins dominating the other component by
// that factor, leaving contested bins out entirely.
func HPSSPower(frames [][]float64, margin float64) (harmonic, percussive float64) {
	if len(frames) == 0 {
		return 0, 0
	}

	bins := len(frames[0])
	half := hpssKernel / 2

	// Harmonic estimate: median across time for each bin.
	harm := make([][]float64, len(frames))
	for f := range harm {
		harm[f] = make([]float64, bins)
	}

	buf := make([]float64, 0, hpssKernel)

	for b := range bins {
		for f := range frames {
			buf = buf[:0]

			for k := f - half; k <= f+half; k++ {
				if k >= 0 && k < len(frames) {
					buf = append(buf, frames[k][b])
				}
			}

			harm[f][b] = median(buf)
		}
	}

	// Percussive estimate: median across frequency for each frame.
	for f := range frames {
		for b := range bins {
			buf = buf[:0]

			for k := b - half; k <= b+half; k++ {
				if k >= 0 && k < bins {
					buf = append(buf, frames[f][k])
				}
			}

			perc := median(buf)
			h := harm[f][b]
			power := frames[f][b] * frames[f][b]

			switch {
			case margin > 1:
				// Hard masks: require clear dominance.
				if h > margin*perc {
					harmonic += power
				} else if perc > margin*h {
					percussive += power
				}
			default:
				// Soft masks: split power by squared dominance.
				den := h*h + perc*perc
				if den > 0 {
					harmonic += power * h * h / den
					percussive += power * perc * perc / den
				}
			}
		}
	}

	return harmonic, percussive
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}
