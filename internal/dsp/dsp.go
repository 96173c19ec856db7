// Package dsp holds the signal-processing primitives behind feature
// extraction: STFT, onset detection, harmonic/percussive separation, mel
// cepstra, chroma and pitch tracking. Everything operates on mono float64
// buffers in [-1, 1].
package dsp

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// HannWindow returns a Hann window of the given size.
func HannWindow(size int) []float64 {
	window := make([]float64, size)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}

	return window
}

// STFT computes magnitude spectra of overlapping Hann-windowed frames.
// The result is indexed [frame][bin] with fftSize/2+1 bins per frame.
func STFT(samples []float64, fftSize, hop int) [][]float64 {
	if len(samples) < fftSize || hop <= 0 {
		return nil
	}

	window := HannWindow(fftSize)
	fft := fourier.NewFFT(fftSize)
	fftIn := make([]float64, fftSize)

	frameCount := (len(samples)-fftSize)/hop + 1
	frames := make([][]float64, frameCount)

	for f := range frameCount {
		pos := f * hop
		for i := range fftSize {
			fftIn[i] = samples[pos+i] * window[i]
		}

		coeffs := fft.Coefficients(nil, fftIn)

		mags := make([]float64, len(coeffs))
		for i, c := range coeffs {
			mags[i] = math.Sqrt(real(c)*real(c) + imag(c)*imag(c))
		}

		frames[f] = mags
	}

	return frames
}

// BinFrequencies returns the center frequency of each STFT bin.
func BinFrequencies(fftSize, sampleRate int) []float64 {
	binHz := float64(sampleRate) / float64(fftSize)

	freqs := make([]float64, fftSize/2+1)
	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}

	return freqs
}

// Autocorrelate returns the full positive-lag autocorrelation of x.
func Autocorrelate(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)

	for lag := range n {
		var sum float64
		for i := 0; i < n-lag; i++ {
			sum += x[i] * x[i+lag]
		}

		out[lag] = sum
	}

	return out
}
