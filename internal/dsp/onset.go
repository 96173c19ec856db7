package dsp

import (
	"gonum.org/v1/gonum/stat"
)

// OnsetEnvelope computes a spectral-flux onset strength curve: per frame,
// the mean positive magnitude increase over the previous frame. The first
// frame has no predecessor and reads zero.
func OnsetEnvelope(frames [][]float64) []float64 {
	if len(frames) == 0 {
		return nil
	}

	env := make([]float64, len(frames))

	for f := 1; f < len(frames); f++ {
		var flux float64

		for b, mag := range frames[f] {
			if d := mag - frames[f-1][b]; d > 0 {
				flux += d
			}
		}

		env[f] = flux / float64(len(frames[f]))
	}

	return env
}

// OnsetCount returns the number of onset events: local maxima of the
// envelope that rise above the mean by half a standard deviation.
func OnsetCount(env []float64) int {
	if len(env) < 3 {
		return 0
	}

	threshold := stat.Mean(env, nil) + 0.5*stat.StdDev(env, nil)

	count := 0

	for i := 1; i < len(env)-1; i++ {
		if env[i] > threshold && env[i] > env[i-1] && env[i] >= env[i+1] {
			count++
		}
	}

	return count
}

// EstimateTempo estimates BPM from the onset envelope via autocorrelation,
// searching lags in the given tempo range. frameRate is envelope frames per
// second. Returns 0 when the envelope carries no periodicity.
func EstimateTempo(env []float64, frameRate, minBPM, maxBPM float64) float64 {
	if len(env) < 4 || frameRate <= 0 {
		return 0
	}

	autocorr := Autocorrelate(env)
	if autocorr[0] <= 0 {
		return 0
	}

	minLag := int(60 * frameRate / maxBPM)
	maxLag := int(60 * frameRate / minBPM)

	if minLag < 1 {
		minLag = 1
	}

	if maxLag >= len(autocorr) {
		maxLag = len(autocorr) - 1
	}

	if maxLag <= minLag {
		return 0
	}

	bestLag := minLag
	bestVal := autocorr[minLag]

	for lag := minLag + 1; lag <= maxLag; lag++ {
		if autocorr[lag] > bestVal {
			bestVal = autocorr[lag]
			bestLag = lag
		}
	}

	bpm := 60 * frameRate / float64(bestLag)

	// Fold octave errors back into range.
	for bpm < minBPM {
		bpm *= 2
	}

	for bpm > maxBPM {
		bpm /= 2
	}

	return bpm
}
