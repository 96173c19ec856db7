package dsp

import "math"

// Chroma folds STFT magnitudes onto the 12 pitch classes: each bin above
// ~30 Hz contributes its magnitude to the pitch class of its center
// frequency. Returns one 12-dimensional vector per frame, each normalized to
// a unit maximum.
func Chroma(frames [][]float64, sampleRate, fftSize int) [][]float64 {
	if len(frames) == 0 {
		return nil
	}

	binHz := float64(sampleRate) / float64(fftSize)

	// Precompute each bin's pitch class; -1 marks bins outside the
	// musical range.
	classes := make([]int, len(frames[0]))
	for b := range classes {
		classes[b] = pitchClass(float64(b) * binHz)
	}

	out := make([][]float64, len(frames))

	for f, mags := range frames {
		chroma := make([]float64, 12)

		for b, mag := range mags {
			if classes[b] >= 0 {
				chroma[classes[b]] += mag
			}
		}

		var maxVal float64
		for _, v := range chroma {
			if v > maxVal {
				maxVal = v
			}
		}

		if maxVal > 0 {
			for i := range chroma {
				chroma[i] /= maxVal
			}
		}

		out[f] = chroma
	}

	return out
}

// pitchClass maps a frequency to its chromatic pitch class (0 = C), or -1
// when the frequency sits below the musical range.
func pitchClass(hz float64) int {
	if hz < 30 {
		return -1
	}

	midi := HzToMidi(hz)

	pc := int(math.Round(midi)) % 12
	if pc < 0 {
		pc += 12
	}

	return pc
}

// HzToMidi converts a frequency to a fractional MIDI note number.
func HzToMidi(hz float64) float64 {
	return 69 + 12*math.Log2(hz/440)
}
