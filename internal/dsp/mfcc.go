package dsp

import "math"

// MFCC computes mel-frequency cepstral coefficients from STFT magnitudes:
// mel filterbank energies, log compression, then a type-II DCT. Returns one
// coefficient vector per frame.
func MFCC(frames [][]float64, sampleRate, fftSize, numFilters, numCoeffs int) [][]float64 {
	if len(frames) == 0 {
		return nil
	}

	filterbank := melFilterbank(numFilters, fftSize, sampleRate)

	out := make([][]float64, len(frames))

	for f, mags := range frames {
		// Filterbank energies on the power spectrum.
		melEnergies := make([]float64, numFilters)

		for m, filter := range filterbank {
			var sum float64
			for b, w := range filter {
				if w > 0 {
					sum += w * mags[b] * mags[b]
				}
			}

			melEnergies[m] = math.Log(sum + 1e-10)
		}

		// DCT-II to decorrelate.
		coeffs := make([]float64, numCoeffs)
		for c := range numCoeffs {
			var sum float64
			for m, e := range melEnergies {
				sum += e * math.Cos(math.Pi*float64(c)*(float64(m)+0.5)/float64(numFilters))
			}

			coeffs[c] = sum
		}

		out[f] = coeffs
	}

	return out
}

func melFilterbank(numFilters, fftSize, sampleRate int) [][]float64 {
	bins := fftSize/2 + 1
	lowMel := hzToMel(0)
	highMel := hzToMel(float64(sampleRate) / 2)

	// numFilters+2 equally spaced mel points define the triangle edges.
	points := make([]float64, numFilters+2)
	for i := range points {
		mel := lowMel + (highMel-lowMel)*float64(i)/float64(numFilters+1)
		points[i] = melToHz(mel) * float64(fftSize) / float64(sampleRate)
	}

	filters := make([][]float64, numFilters)

	for m := range numFilters {
		filter := make([]float64, bins)
		left, center, right := points[m], points[m+1], points[m+2]

		for b := range bins {
			fb := float64(b)

			switch {
			case fb > left && fb <= center && center > left:
				filter[b] = (fb - left) / (center - left)
			case fb > center && fb < right && right > center:
				filter[b] = (right - fb) / (right - center)
			}
		}

		filters[m] = filter
	}

	return filters
}

func hzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

func melToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}
