package decode

import (
	"fmt"

	"github.com/jfreymuth/oggvorbis"
)

func decodeOGG(path string) (*Signal, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	channels := format.Channels
	if channels < 1 {
		return nil, fmt.Errorf("%w: no audio channels: %s", ErrUnsupportedFormat, path)
	}

	frames := len(samples) / channels

	sig := &Signal{SampleRate: format.SampleRate}
	sig.Left = make([]float64, frames)

	if channels >= 2 {
		sig.Right = make([]float64, frames)
	}

	for i := range frames {
		sig.Left[i] = float64(samples[i*channels])
		if channels >= 2 {
			sig.Right[i] = float64(samples[i*channels+1])
		}
	}

	return sig, nil
}
