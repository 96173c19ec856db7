// Package decode turns audio files into normalized float64 sample buffers.
// Native decoders cover wav, mp3, ogg and flac; anything else falls back to
// ffmpeg when it is installed.
package decode

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/farcloser/primordium/fault"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Signal is a decoded track: per-channel samples in [-1, 1] at SampleRate.
// Right is nil for mono sources.
type Signal struct {
	Left       []float64
	Right      []float64
	SampleRate int
}

// Stereo reports whether the signal carries two distinct channels.
func (s *Signal) Stereo() bool {
	return s.Right != nil
}

// Frames returns the per-channel sample count.
func (s *Signal) Frames() int {
	return len(s.Left)
}

// Duration returns the signal length in seconds.
func (s *Signal) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}

	return float64(len(s.Left)) / float64(s.SampleRate)
}

// Mono mixes the channels down to a single buffer. Mono sources return Left
// directly.
func (s *Signal) Mono() []float64 {
	if s.Right == nil {
		return s.Left
	}

	mixed := make([]float64, len(s.Left))
	for i := range mixed {
		mixed[i] = (s.Left[i] + s.Right[i]) / 2
	}

	return mixed
}

// Peak returns the maximum absolute sample value across channels.
func (s *Signal) Peak() float64 {
	var peak float64

	for _, v := range s.Left {
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
	}

	for _, v := range s.Right {
		if abs := math.Abs(v); abs > peak {
			peak = abs
		}
	}

	return peak
}

// File decodes an audio file, picking the decoder by extension. Unknown
// extensions are handed to ffmpeg.
func File(path string) (*Signal, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav":
		return decodeWAV(path)
	case ".mp3":
		return decodeMP3(path)
	case ".ogg", ".oga":
		return decodeOGG(path)
	case ".flac":
		return decodeFLAC(path)
	default:
		return decodeFFmpeg(path)
	}
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	return f, nil
}

// deinterleave splits interleaved int samples into a Signal, normalizing by
// the given full-scale value.
func deinterleave(raw []int, channels, sampleRate int, maxVal float64) *Signal {
	frames := len(raw) / channels

	sig := &Signal{SampleRate: sampleRate}
	sig.Left = make([]float64, frames)

	if channels >= 2 {
		sig.Right = make([]float64, frames)
	}

	for i := range frames {
		sig.Left[i] = float64(raw[i*channels]) / maxVal
		if channels >= 2 {
			sig.Right[i] = float64(raw[i*channels+1]) / maxVal
		}
	}

	return sig
}
