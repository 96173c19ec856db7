package feature

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/meristem/internal/dsp"
)

// Band edges in Hz for the energy distribution descriptors.
const (
	lowBandLo  = 20
	lowBandHi  = 250
	midBandHi  = 4000
	subBassLo  = 20
	subBassHi  = 60
	vocalLo    = 200
	vocalHi    = 4000
)

func extractEnergy(a *Analysis, _ map[string]Value) map[string]Value {
	if len(a.Mono) == 0 {
		return map[string]Value{"energy": {}}
	}

	var sum float64
	for _, v := range a.Mono {
		sum += v * v
	}

	return map[string]Value{"energy": {Number: sum / float64(len(a.Mono))}}
}

// extractRMS averages frame-wise RMS rather than taking a single global
// value, so quiet passages weigh in instead of being drowned by peaks.
func extractRMS(a *Analysis, _ map[string]Value) map[string]Value {
	if len(a.Mono) < fftSize {
		return map[string]Value{"rms": {Number: globalRMS(a.Mono)}}
	}

	var (
		sum    float64
		frames int
	)

	for pos := 0; pos+fftSize <= len(a.Mono); pos += hopSize {
		var e float64
		for _, v := range a.Mono[pos : pos+fftSize] {
			e += v * v
		}

		sum += math.Sqrt(e / fftSize)
		frames++
	}

	return map[string]Value{"rms": {Number: sum / float64(frames)}}
}

func globalRMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, v := range samples {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(samples)))
}

func extractZCR(a *Analysis, _ map[string]Value) map[string]Value {
	if len(a.Mono) < 2 {
		return map[string]Value{"zero_crossing_rate": {}}
	}

	crossings := 0

	for i := 1; i < len(a.Mono); i++ {
		if (a.Mono[i-1] >= 0) != (a.Mono[i] >= 0) {
			crossings++
		}
	}

	rate := float64(crossings) / float64(len(a.Mono)-1)

	return map[string]Value{"zero_crossing_rate": {Number: rate}}
}

// extractCentroid returns the mean per-frame spectral centroid in Hz.
func extractCentroid(a *Analysis, _ map[string]Value) map[string]Value {
	frames := a.STFT()
	if len(frames) == 0 {
		return map[string]Value{"spectral_centroid": {}}
	}

	freqs := dsp.BinFrequencies(fftSize, Rate)

	var (
		sum   float64
		count int
	)

	for _, mags := range frames {
		var num, den float64

		for b, m := range mags {
			num += freqs[b] * m
			den += m
		}

		if den > 0 {
			sum += num / den
			count++
		}
	}

	if count == 0 {
		return map[string]Value{"spectral_centroid": {}}
	}

	return map[string]Value{"spectral_centroid": {Number: sum / float64(count)}}
}

// extractRolloff returns the mean frequency below which 85% of each frame's
// spectral energy sits.
func extractRolloff(a *Analysis, _ map[string]Value) map[string]Value {
	frames := a.STFT()
	if len(frames) == 0 {
		return map[string]Value{"spectral_rolloff": {}}
	}

	freqs := dsp.BinFrequencies(fftSize, Rate)

	var (
		sum   float64
		count int
	)

	for _, mags := range frames {
		var total float64
		for _, m := range mags {
			total += m
		}

		if total == 0 {
			continue
		}

		target := total * 0.85

		var running float64

		for b, m := range mags {
			running += m
			if running >= target {
				sum += freqs[b]
				count++

				break
			}
		}
	}

	if count == 0 {
		return map[string]Value{"spectral_rolloff": {}}
	}

	return map[string]Value{"spectral_rolloff": {Number: sum / float64(count)}}
}

// extractFlatness returns mean Wiener entropy of the power spectrum:
// 1 for noise, near 0 for tonal content.
func extractFlatness(a *Analysis, _ map[string]Value) map[string]Value {
	frames := a.STFT()
	if len(frames) == 0 {
		return map[string]Value{"spectral_flatness": {}}
	}

	var (
		sum   float64
		count int
	)

	for _, mags := range frames {
		var (
			logSum  float64
			arith   float64
			nonZero int
		)

		for _, m := range mags {
			p := m*m + 1e-12
			logSum += math.Log(p)
			arith += p
			nonZero++
		}

		if nonZero == 0 || arith == 0 {
			continue
		}

		geometric := math.Exp(logSum / float64(nonZero))
		sum += geometric / (arith / float64(nonZero))
		count++
	}

	if count == 0 {
		return map[string]Value{"spectral_flatness": {}}
	}

	return map[string]Value{"spectral_flatness": {Number: sum / float64(count)}}
}

// extractContrast measures the mean peak-to-valley spread in dB across
// octave bands, per frame. Punchy mixes score high, muddy ones low.
func extractContrast(a *Analysis, _ map[string]Value) map[string]Value {
	frames := a.STFT()
	if len(frames) == 0 {
		return map[string]Value{"spectral_contrast": {}}
	}

	binHz := float64(Rate) / fftSize

	// Octave bands from 200 Hz up to Nyquist.
	type band struct{ lo, hi int }

	var bands []band

	for lo := 200.0; lo < Rate/2; lo *= 2 {
		hi := math.Min(lo*2, Rate/2)
		bands = append(bands, band{int(lo / binHz), int(hi / binHz)})
	}

	var (
		sum   float64
		count int
	)

	for _, mags := range frames {
		for _, bd := range bands {
			if bd.hi <= bd.lo || bd.hi > len(mags) {
				continue
			}

			sub := make([]float64, bd.hi-bd.lo)
			copy(sub, mags[bd.lo:bd.hi])

			quantile := max(len(sub)/5, 1)

			top := topMeanDb(sub, quantile, true)
			bottom := topMeanDb(sub, quantile, false)

			sum += top - bottom
			count++
		}
	}

	if count == 0 {
		return map[string]Value{"spectral_contrast": {}}
	}

	return map[string]Value{"spectral_contrast": {Number: sum / float64(count)}}
}

// topMeanDb returns the dB mean of the n largest (or smallest) magnitudes.
func topMeanDb(mags []float64, n int, largest bool) float64 {
	// Partial selection sort is enough at these sizes.
	for i := 0; i < n && i < len(mags); i++ {
		sel := i
		for j := i + 1; j < len(mags); j++ {
			if largest == (mags[j] > mags[sel]) {
				sel = j
			}
		}

		mags[i], mags[sel] = mags[sel], mags[i]
	}

	var sum float64
	for i := 0; i < n && i < len(mags); i++ {
		sum += 20 * math.Log10(mags[i]+1e-10)
	}

	return sum / float64(n)
}

// extractBandEnergy splits spectral magnitude into low (20-250 Hz), mid
// (250-4000 Hz) and high (4 kHz-Nyquist) shares, each as a percentage of
// their combined total.
func extractBandEnergy(a *Analysis, _ map[string]Value) map[string]Value {
	frames := a.STFT()
	freqs := dsp.BinFrequencies(fftSize, Rate)

	var low, mid, high float64

	for _, mags := range frames {
		for b, m := range mags {
			switch f := freqs[b]; {
			case f >= lowBandLo && f < lowBandHi:
				low += m
			case f >= lowBandHi && f < midBandHi:
				mid += m
			case f >= midBandHi:
				high += m
			}
		}
	}

	total := low + mid + high
	if total == 0 {
		return map[string]Value{"low_energy": {}, "mid_energy": {}, "high_energy": {}}
	}

	return map[string]Value{
		"low_energy":  {Number: low / total * 100},
		"mid_energy":  {Number: mid / total * 100},
		"high_energy": {Number: high / total * 100},
	}
}

// extractSubBass returns 20-60 Hz magnitude as a percentage of the whole
// spectrum.
func extractSubBass(a *Analysis, _ map[string]Value) map[string]Value {
	frames := a.STFT()
	freqs := dsp.BinFrequencies(fftSize, Rate)

	var sub, total float64

	for _, mags := range frames {
		for b, m := range mags {
			total += m

			if freqs[b] >= subBassLo && freqs[b] < subBassHi {
				sub += m
			}
		}
	}

	if total == 0 {
		return map[string]Value{"sub_bass_presence": {}}
	}

	return map[string]Value{"sub_bass_presence": {Number: sub / total * 100}}
}

// extractFrequencyOccupancy returns the spectral center of gravity across
// the whole track, in Hz.
func extractFrequencyOccupancy(a *Analysis, _ map[string]Value) map[string]Value {
	frames := a.STFT()
	if len(frames) == 0 {
		return map[string]Value{"frequency_occupancy": {Number: 1000}}
	}

	freqs := dsp.BinFrequencies(fftSize, Rate)
	perBin := make([]float64, len(freqs))

	for _, mags := range frames {
		for b, m := range mags {
			perBin[b] += m
		}
	}

	var num, den float64

	for b, e := range perBin {
		num += freqs[b] * e
		den += e
	}

	if den == 0 {
		return map[string]Value{"frequency_occupancy": {Number: 1000}}
	}

	return map[string]Value{"frequency_occupancy": {Number: num / den}}
}

// extractVocalRatio estimates the share of energy in the 200-4000 Hz band
// where vocals live.
func extractVocalRatio(a *Analysis, _ map[string]Value) map[string]Value {
	frames := a.STFT()
	freqs := dsp.BinFrequencies(fftSize, Rate)

	var vocal, total float64

	for _, mags := range frames {
		for b, m := range mags {
			total += m

			if freqs[b] >= vocalLo && freqs[b] <= vocalHi {
				vocal += m
			}
		}
	}

	if total == 0 {
		return map[string]Value{"vocal_instrumental_ratio": {Number: 0.5}}
	}

	return map[string]Value{"vocal_instrumental_ratio": {Number: clamp01(vocal / total)}}
}

// extractTimbralDiversity scores texture variety as the mean temporal
// variance of the mel cepstra, empirically scaled into 0-1.
func extractTimbralDiversity(a *Analysis, _ map[string]Value) map[string]Value {
	cepstra := a.MFCC()
	if len(cepstra) < 2 {
		return map[string]Value{"timbral_diversity": {Number: 0.5}}
	}

	numCoeffs := len(cepstra[0])
	column := make([]float64, len(cepstra))

	var varianceSum float64

	for c := range numCoeffs {
		for f, frame := range cepstra {
			column[f] = frame[c]
		}

		varianceSum += stat.Variance(column, nil)
	}

	diversity := varianceSum / float64(numCoeffs) / 100

	return map[string]Value{"timbral_diversity": {Number: clamp01(diversity)}}
}
