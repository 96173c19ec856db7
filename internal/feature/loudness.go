package feature

import (
	"math"
	"sort"
)

// Biquad filter coefficients.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// Biquad filter state.
type biquadState struct {
	z1, z2 float64
}

func (s *biquadState) process(b *biquad, in float64) float64 {
	out := b.b0*in + s.z1
	s.z1 = b.b1*in - b.a1*out + s.z2
	s.z2 = b.b2*in - b.a2*out

	return out
}

// K-weighting filter coefficients per ITU-R BS.1770-4: pre-filter (high
// shelf) modeling the head, plus RLB weighting (high pass).
func getKWeightingFilters(sampleRate int) (pre, rlb biquad) {
	fs := float64(sampleRate)

	f0 := 1681.974450955533
	G := 3.999843853973347
	Q := 0.7071752369554196

	K := math.Tan(math.Pi * f0 / fs)
	Vh := math.Pow(10, G/20)
	Vb := math.Pow(Vh, 0.4996667741545416)

	a0 := 1 + K/Q + K*K
	pre.b0 = (Vh + Vb*K/Q + K*K) / a0
	pre.b1 = 2 * (K*K - Vh) / a0
	pre.b2 = (Vh - Vb*K/Q + K*K) / a0
	pre.a1 = 2 * (K*K - 1) / a0
	pre.a2 = (1 - K/Q + K*K) / a0

	f0 = 38.13547087602444
	Q = 0.5003270373238773

	K = math.Tan(math.Pi * f0 / fs)

	a0 = 1 + K/Q + K*K
	rlb.b0 = 1 / a0
	rlb.b1 = -2 / a0
	rlb.b2 = 1 / a0
	rlb.a1 = 2 * (K*K - 1) / a0
	rlb.a2 = (1 - K/Q + K*K) / a0

	return pre, rlb
}

// integratedLoudness measures gated loudness in LUFS over a mono buffer:
// K-weighted power in 400ms windows at 100ms hops, absolute gate at -70
// LUFS, relative gate 10 LU under the ungated mean. Returns -120 for
// silence or signals shorter than one window.
func integratedLoudness(samples []float64, sampleRate int) float64 {
	windowSize := sampleRate * 400 / 1000
	hop := sampleRate * 100 / 1000

	if len(samples) < windowSize || hop == 0 {
		return -120
	}

	pre, rlb := getKWeightingFilters(sampleRate)

	var preState, rlbState biquadState

	// Square of the K-weighted signal, then windowed means below.
	weighted := make([]float64, len(samples))
	for i, v := range samples {
		f := preState.process(&pre, v)
		f = rlbState.process(&rlb, f)
		weighted[i] = f * f
	}

	var powers []float64

	// Running sum over the first window, then slide by hop.
	var windowSum float64
	for _, p := range weighted[:windowSize] {
		windowSum += p
	}

	powers = append(powers, windowSum/float64(windowSize))

	for pos := hop; pos+windowSize <= len(weighted); pos += hop {
		for i := pos - hop; i < pos; i++ {
			windowSum -= weighted[i]
		}

		for i := pos + windowSize - hop; i < pos+windowSize; i++ {
			windowSum += weighted[i]
		}

		powers = append(powers, windowSum/float64(windowSize))
	}

	return gatedLoudness(powers)
}

// gatedLoudness applies the two-stage EBU R128 gate to window powers.
func gatedLoudness(powers []float64) float64 {
	if len(powers) == 0 {
		return -120
	}

	var (
		sum   float64
		count int
	)

	for _, p := range powers {
		lufs := -0.691 + 10*math.Log10(p)
		if lufs > -70 {
			sum += p
			count++
		}
	}

	if count == 0 {
		return -120
	}

	ungatedMean := sum / float64(count)
	relativeThreshold := -0.691 + 10*math.Log10(ungatedMean) - 10

	sum = 0
	count = 0

	for _, p := range powers {
		lufs := -0.691 + 10*math.Log10(p)
		if lufs > relativeThreshold {
			sum += p
			count++
		}
	}

	if count == 0 {
		return -120
	}

	return -0.691 + 10*math.Log10(sum/float64(count))
}

func extractLoudness(a *Analysis, _ map[string]Value) map[string]Value {
	lufs := integratedLoudness(a.Mono, Rate)
	if lufs <= -120 {
		// Fallback for very short signals: RMS-based estimate.
		lufs = 20 * math.Log10(globalRMS(a.Mono)+1e-10)
	}

	return map[string]Value{"loudness": {Number: lufs}}
}

// extractLoudnessRange measures each 3-second segment independently and
// takes the spread between the 95th and 10th percentile, in LU. Segments
// quieter than -70 LUFS are ignored.
func extractLoudnessRange(a *Analysis, _ map[string]Value) map[string]Value {
	segment := Rate * 3

	var values []float64

	for pos := 0; pos+segment <= len(a.Mono); pos += segment {
		lufs := integratedLoudness(a.Mono[pos:pos+segment], Rate)
		if lufs > -70 {
			values = append(values, lufs)
		}
	}

	if len(values) < 2 {
		return map[string]Value{"loudness_range": {}}
	}

	sort.Float64s(values)

	low := percentile(values, 0.10)
	high := percentile(values, 0.95)

	return map[string]Value{"loudness_range": {Number: math.Max(0, high-low)}}
}

// percentile interpolates linearly over sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p * float64(len(sorted)-1)
	idx := int(pos)
	frac := pos - float64(idx)

	if idx+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[idx]*(1-frac) + sorted[idx+1]*frac
}

// extractDynamicRange returns the peak to RMS ratio in dB.
func extractDynamicRange(a *Analysis, _ map[string]Value) map[string]Value {
	return map[string]Value{"dynamic_range": {Number: peakToRMSDb(a.Mono)}}
}

// extractCrestFactor is the same peak to RMS ratio; mastering engineers
// read it as punchiness where dynamic range reads as compression headroom.
func extractCrestFactor(a *Analysis, _ map[string]Value) map[string]Value {
	return map[string]Value{"crest_factor": {Number: peakToRMSDb(a.Mono)}}
}

func peakToRMSDb(samples []float64) float64 {
	var peak float64

	for _, v := range samples {
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
	}

	rms := globalRMS(samples)
	if rms == 0 || peak == 0 {
		return 0
	}

	return 20 * math.Log10(peak/rms)
}
