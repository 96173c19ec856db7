package feature

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/meristem/internal/dsp"
)

// extractArrangementDensity measures how much the mix density moves over
// 2-second windows: the coefficient of variation of segment RMS.
func extractArrangementDensity(a *Analysis, _ map[string]Value) map[string]Value {
	segment := Rate * 2

	var values []float64

	for pos := 0; pos+segment <= len(a.Mono); pos += segment {
		values = append(values, globalRMS(a.Mono[pos:pos+segment]))
	}

	if len(values) < 2 {
		return map[string]Value{"arrangement_density": {}}
	}

	variation := stat.StdDev(values, nil) / (stat.Mean(values, nil) + 1e-6)

	return map[string]Value{"arrangement_density": {Number: clamp01(variation)}}
}

// extractEnergyCurve is the same idea over coarser 4-second windows of raw
// energy, catching verse/chorus arcs rather than bar-level movement.
func extractEnergyCurve(a *Analysis, _ map[string]Value) map[string]Value {
	segment := Rate * 4

	var values []float64

	for pos := 0; pos+segment <= len(a.Mono); pos += segment {
		var e float64
		for _, v := range a.Mono[pos : pos+segment] {
			e += v * v
		}

		values = append(values, e)
	}

	if len(values) < 3 {
		return map[string]Value{"energy_curve": {}}
	}

	variation := stat.StdDev(values, nil) / (stat.Mean(values, nil) + 1e-6)

	return map[string]Value{"energy_curve": {Number: clamp01(variation)}}
}

// extractTransientEnergy reports the percussive share of spectral power in
// percent, from a soft harmonic/percussive split.
func extractTransientEnergy(a *Analysis, _ map[string]Value) map[string]Value {
	harmonic, percussive := dsp.HPSSPower(a.STFT(), 1)

	total := harmonic + percussive
	if total == 0 {
		return map[string]Value{"transient_energy": {}}
	}

	return map[string]Value{"transient_energy": {Number: percussive / total * 100}}
}

// extractHNR is the harmonic-to-noise power ratio in dB, using a stricter
// split (margin 2) so contested bins count toward neither side. A track
// with no percussive power at all reads 20 dB.
func extractHNR(a *Analysis, _ map[string]Value) map[string]Value {
	harmonic, percussive := dsp.HPSSPower(a.STFT(), 2.0)

	if percussive <= 0 {
		return map[string]Value{"harmonic_to_noise_ratio": {Number: 20}}
	}

	if harmonic <= 0 {
		return map[string]Value{"harmonic_to_noise_ratio": {Number: -120}}
	}

	hnr := 10 * math.Log10(harmonic/percussive)

	return map[string]Value{"harmonic_to_noise_ratio": {Number: hnr}}
}
