package dsp

// PitchTrack estimates one dominant pitch per frame: the frequency of the
// strongest spectral peak, refined by parabolic interpolation. Frames whose
// peak falls below the magnitude floor (relative to the loudest frame) read
// zero, marking them unvoiced.
func PitchTrack(frames [][]float64, sampleRate, fftSize int) []float64 {
	if len(frames) == 0 {
		return nil
	}

	binHz := float64(sampleRate) / float64(fftSize)

	// Restrict to a melodic range; above ~4 kHz peaks are overtones and
	// percussion.
	minBin := int(60 / binHz)
	maxBin := int(4000 / binHz)

	if minBin < 1 {
		minBin = 1
	}

	if maxBin >= len(frames[0])-1 {
		maxBin = len(frames[0]) - 2
	}

	// Global magnitude floor: 1% of the strongest peak anywhere.
	var globalPeak float64

	for _, mags := range frames {
		for b := minBin; b <= maxBin; b++ {
			if mags[b] > globalPeak {
				globalPeak = mags[b]
			}
		}
	}

	floor := globalPeak * 0.01

	pitches := make([]float64, len(frames))

	for f, mags := range frames {
		bestBin := -1

		var bestMag float64

		for b := minBin; b <= maxBin; b++ {
			if mags[b] > bestMag && mags[b] > mags[b-1] && mags[b] >= mags[b+1] {
				bestMag = mags[b]
				bestBin = b
			}
		}

		if bestBin < 0 || bestMag < floor {
			continue
		}

		// Parabolic interpolation around the peak bin.
		alpha := mags[bestBin-1]
		beta := mags[bestBin]
		gamma := mags[bestBin+1]

		offset := 0.0
		if den := alpha - 2*beta + gamma; den != 0 {
			offset = 0.5 * (alpha - gamma) / den
		}

		pitches[f] = (float64(bestBin) + offset) * binHz
	}

	return pitches
}
