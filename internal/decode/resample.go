package decode

// Resample converts samples to the target rate with linear interpolation.
// Feature extraction works at a reduced rate where spectral precision above
// ~5 kHz does not matter, so a windowed-sinc stage is not worth its cost here.
func Resample(samples []float64, srcRate, dstRate int) []float64 {
	if srcRate == dstRate || len(samples) == 0 {
		return samples
	}

	ratio := float64(srcRate) / float64(dstRate)
	outLen := int(float64(len(samples)) / ratio)

	if outLen < 1 {
		outLen = 1
	}

	out := make([]float64, outLen)

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := pos - float64(idx)

		if idx+1 < len(samples) {
			out[i] = samples[idx]*(1-frac) + samples[idx+1]*frac
		} else {
			out[i] = samples[len(samples)-1]
		}
	}

	return out
}
