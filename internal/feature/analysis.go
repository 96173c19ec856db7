// Package feature extracts track descriptors from decoded audio. Each
// descriptor is registered with its dependencies; shared intermediates
// (STFT, chroma, onset envelope, cepstra, pitch track) are computed once per
// track and memoized on the Analysis.
package feature

import (
	"github.com/farcloser/meristem/internal/decode"
	"github.com/farcloser/meristem/internal/dsp"
)

const (
	// Rate is the internal analysis sample rate. Descriptors care about
	// broad spectral balance, not fidelity, so decimating keeps the FFT
	// work proportionate.
	Rate = 11025

	fftSize = 2048
	hopSize = 512
)

// Value is one extracted descriptor: a number, or a label for categorical
// descriptors (musical key).
type Value struct {
	Number float64
	Label  string
}

// Analysis wraps a decoded signal resampled to the analysis rate and lazily
// computes the intermediates extractors share. Not safe for concurrent use;
// batch parallelism runs one Analysis per track.
type Analysis struct {
	Mono  []float64
	Left  []float64
	Right []float64 // nil for mono sources

	stft     [][]float64
	onsetEnv []float64
	onsetAC  []float64
	chroma   [][]float64
	mfcc     [][]float64
	pitch    []float64

	stftDone  bool
	onsetDone bool
	acDone    bool
	pitchDone bool
}

// NewAnalysis resamples the signal down to the analysis rate.
func NewAnalysis(sig *decode.Signal) *Analysis {
	a := &Analysis{
		Mono: decode.Resample(sig.Mono(), sig.SampleRate, Rate),
	}

	if sig.Stereo() {
		a.Left = decode.Resample(sig.Left, sig.SampleRate, Rate)
		a.Right = decode.Resample(sig.Right, sig.SampleRate, Rate)
	} else {
		a.Left = a.Mono
	}

	return a
}

// Duration returns the track length in seconds at the analysis rate.
func (a *Analysis) Duration() float64 {
	return float64(len(a.Mono)) / Rate
}

// STFT returns the memoized magnitude spectrogram, [frame][bin].
func (a *Analysis) STFT() [][]float64 {
	if !a.stftDone {
		a.stft = dsp.STFT(a.Mono, fftSize, hopSize)
		a.stftDone = true
	}

	return a.stft
}

// FrameRate returns STFT frames per second.
func (a *Analysis) FrameRate() float64 {
	return float64(Rate) / float64(hopSize)
}

// OnsetEnvelope returns the memoized spectral-flux onset strength curve.
func (a *Analysis) OnsetEnvelope() []float64 {
	if !a.onsetDone {
		a.onsetEnv = dsp.OnsetEnvelope(a.STFT())
		a.onsetDone = true
	}

	return a.onsetEnv
}

// OnsetAutocorr returns the memoized autocorrelation of the onset envelope.
func (a *Analysis) OnsetAutocorr() []float64 {
	if !a.acDone {
		a.onsetAC = dsp.Autocorrelate(a.OnsetEnvelope())
		a.acDone = true
	}

	return a.onsetAC
}

// Chroma returns memoized per-frame pitch-class profiles.
func (a *Analysis) Chroma() [][]float64 {
	if a.chroma == nil {
		a.chroma = dsp.Chroma(a.STFT(), Rate, fftSize)
	}

	return a.chroma
}

// MFCC returns memoized per-frame mel cepstra (13 coefficients).
func (a *Analysis) MFCC() [][]float64 {
	if a.mfcc == nil {
		a.mfcc = dsp.MFCC(a.STFT(), Rate, fftSize, 26, 13)
	}

	return a.mfcc
}

// Pitch returns the memoized dominant-pitch track (Hz, 0 = unvoiced).
func (a *Analysis) Pitch() []float64 {
	if !a.pitchDone {
		a.pitch = dsp.PitchTrack(a.STFT(), Rate, fftSize)
		a.pitchDone = true
	}

	return a.pitch
}
