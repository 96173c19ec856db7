package decode

import (
	"fmt"

	"github.com/farcloser/primordium/fault"
	"github.com/go-audio/wav"
)

func decodeWAV(path string) (*Signal, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a valid wav file: %s", ErrUnsupportedFormat, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("%w: no audio channels: %s", ErrUnsupportedFormat, path)
	}

	var maxVal float64

	switch dec.BitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		return nil, fmt.Errorf("%w: %d-bit wav: %s", ErrUnsupportedFormat, dec.BitDepth, path)
	}

	samples := buf.Data

	// 8-bit WAV is unsigned; recenter before normalizing.
	if dec.BitDepth == 8 {
		for i, v := range samples {
			samples[i] = v - 128
		}
	}

	return deinterleave(samples, channels, buf.Format.SampleRate, maxVal), nil
}
